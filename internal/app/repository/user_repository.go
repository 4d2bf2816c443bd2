package repository

import (
	"errors"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/pkg/logger"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *model.User) error {
	logger.Debug("Creating user in database", map[string]interface{}{
		"username": user.Username,
		"email":    user.Email,
	})

	if err := r.db.Create(user).Error; err != nil {
		err = translate(err)
		logger.Error("Failed to create user in database", err, map[string]interface{}{
			"username": user.Username,
		})
		return err
	}

	logger.Debug("User created in database", map[string]interface{}{
		"user_id": user.ID,
	})
	return nil
}

func (r *userRepository) FindUserByID(id uint) (*model.User, error) {
	return r.findOne("id = ?", id)
}

func (r *userRepository) FindUserByUsername(username string) (*model.User, error) {
	return r.findOne("username = ?", username)
}

func (r *userRepository) FindUserByEmail(email string) (*model.User, error) {
	return r.findOne("email = ?", email)
}

func (r *userRepository) findOne(cond string, arg interface{}) (*model.User, error) {
	var user model.User
	if err := r.db.Where(cond, arg).First(&user).Error; err != nil {
		err = translate(err)
		if !errors.Is(err, ErrNotFound) {
			logger.Error("Failed to find user in database", err, map[string]interface{}{
				"condition": cond,
			})
		}
		return nil, err
	}
	return &user, nil
}
