package repository

import (
	"fmt"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// nextSequence bumps the named counter and returns the new value. It must
// run inside the caller's transaction.
func nextSequence(tx *gorm.DB, name string) (int64, error) {
	err := tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.IDSequence{Name: name, Value: 0}).Error
	if err != nil {
		return 0, err
	}

	err = tx.Model(&model.IDSequence{}).
		Where("name = ?", name).
		Update("value", gorm.Expr("value + 1")).Error
	if err != nil {
		return 0, err
	}

	var seq model.IDSequence
	if err := tx.Where("name = ?", name).First(&seq).Error; err != nil {
		return 0, err
	}
	return seq.Value, nil
}

// nextFreeID draws sequence values until the prefixed id is not taken by
// a row of dest's table. Caller-supplied ids may occupy generated slots.
func nextFreeID(tx *gorm.DB, dest interface{}, sequence, prefix string) (string, error) {
	for {
		n, err := nextSequence(tx, sequence)
		if err != nil {
			return "", err
		}
		id := fmt.Sprintf("%s%d", prefix, n)

		var count int64
		if err := tx.Model(dest).Where("id = ?", id).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return id, nil
		}
	}
}
