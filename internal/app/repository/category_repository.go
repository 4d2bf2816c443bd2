package repository

import (
	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/pkg/logger"
	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) CreateCategory(category *model.ProductCategory) error {
	logger.Debug("Creating category in database", map[string]interface{}{
		"slug": category.Slug,
	})

	if err := r.db.Create(category).Error; err != nil {
		err = translate(err)
		logger.Error("Failed to create category in database", err, map[string]interface{}{
			"slug": category.Slug,
		})
		return err
	}
	return nil
}

func (r *categoryRepository) ListCategories() ([]model.ProductCategory, error) {
	var categories []model.ProductCategory
	if err := r.db.Order("id ASC").Find(&categories).Error; err != nil {
		logger.Error("Failed to list categories from database", err)
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindCategoryByID(id uint) (*model.ProductCategory, error) {
	var category model.ProductCategory
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (r *categoryRepository) FindCategoryBySlug(slug string) (*model.ProductCategory, error) {
	var category model.ProductCategory
	if err := r.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}
