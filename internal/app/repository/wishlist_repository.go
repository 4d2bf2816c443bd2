package repository

import (
	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) AddToWishlist(item *model.WishlistItem) error {
	fields := map[string]interface{}{
		"user_id":    item.UserID,
		"product_id": item.ProductID,
	}
	logger.Debug("Adding item to wishlist in database", fields)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).Create(item).Error
		if err != nil {
			return err
		}

		var stored model.WishlistItem
		err = tx.Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).First(&stored).Error
		if err != nil {
			return err
		}
		*item = stored
		return nil
	})
	if err != nil {
		logger.Error("Failed to add item to wishlist in database", err, fields)
		return err
	}
	return nil
}

func (r *wishlistRepository) ListWishlistItems(userID uint) ([]model.WishlistItem, error) {
	var items []model.WishlistItem
	if err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
		logger.Error("Failed to list wishlist items from database", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	if items == nil {
		items = []model.WishlistItem{}
	}
	return items, nil
}

func (r *wishlistRepository) RemoveFromWishlist(userID uint, productID string) (bool, error) {
	result := r.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&model.WishlistItem{})
	if result.Error != nil {
		logger.Error("Failed to delete wishlist item from database", result.Error, map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
		})
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *wishlistRepository) IsInWishlist(userID uint, productID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		logger.Error("Failed to check wishlist in database", err, map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
		})
		return false, err
	}
	return count > 0, nil
}

// ToggleWishlist inserts first so that concurrent toggles serialise on the
// (user_id, product_id) unique index. A conflicting insert means the row
// exists and is deleted instead; if another toggle removed it meanwhile,
// the insert is retried.
func (r *wishlistRepository) ToggleWishlist(userID uint, productID string) (bool, error) {
	var present bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for {
			inserted, err := insertWishlistPair(tx, userID, productID)
			if err != nil {
				return err
			}
			if inserted {
				present = true
				return nil
			}

			result := tx.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&model.WishlistItem{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected > 0 {
				present = false
				return nil
			}
		}
	})
	if err != nil {
		logger.Error("Failed to toggle wishlist item in database", err, map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
		})
		return false, err
	}
	return present, nil
}

func insertWishlistPair(tx *gorm.DB, userID uint, productID string) (bool, error) {
	result := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoNothing: true,
	}).Create(&model.WishlistItem{UserID: userID, ProductID: productID})
	return result.RowsAffected > 0, result.Error
}
