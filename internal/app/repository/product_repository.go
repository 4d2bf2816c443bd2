package repository

import (
	"errors"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/pkg/logger"
	"gorm.io/gorm"
)

const productSequence = "products"

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) CreateProduct(product *model.Product) error {
	logger.Debug("Creating product in database", map[string]interface{}{
		"product_id": product.ID,
		"slug":       product.Slug,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if product.ID == "" {
			id, err := nextFreeID(tx, &model.Product{}, productSequence, model.ProductIDPrefix)
			if err != nil {
				return err
			}
			product.ID = id
		}
		return tx.Create(product).Error
	})
	if err != nil {
		err = translate(err)
		logger.Error("Failed to create product in database", err, map[string]interface{}{
			"product_id": product.ID,
			"slug":       product.Slug,
		})
		return err
	}

	logger.Debug("Product created in database", map[string]interface{}{
		"product_id": product.ID,
	})
	return nil
}

func (r *productRepository) ListProducts() ([]model.Product, error) {
	return r.find(r.db)
}

func (r *productRepository) FindProductByID(id string) (*model.Product, error) {
	var product model.Product
	if err := r.db.Where("id = ?", id).First(&product).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *productRepository) FindProductBySlug(slug string) (*model.Product, error) {
	var product model.Product
	if err := r.db.Where("slug = ?", slug).First(&product).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *productRepository) ListProductsByCategory(categoryID uint) ([]model.Product, error) {
	return r.FilterProducts(ProductFilter{CategoryID: &categoryID})
}

func (r *productRepository) ListFeaturedProducts() ([]model.Product, error) {
	return r.find(r.db.Where("is_featured = ?", true))
}

func (r *productRepository) SearchProducts(query string) ([]model.Product, error) {
	return r.FilterProducts(ProductFilter{Query: query})
}

func (r *productRepository) FilterProducts(filter ProductFilter) ([]model.Product, error) {
	logger.Debug("Filtering products in database", filter.LogFields())

	query := r.db.Model(&model.Product{})

	if filter.CategoryID != nil {
		var category model.ProductCategory
		err := r.db.First(&category, *filter.CategoryID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []model.Product{}, nil
		}
		if err != nil {
			logger.Error("Failed to resolve category for product filter", err, filter.LogFields())
			return nil, err
		}
		query = query.Where("category = ?", category.Name)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Material != nil {
		query = query.Where(`material <> '' AND LOWER(material) LIKE ? ESCAPE '\'`, likePattern(*filter.Material))
	}
	if filter.Query != "" {
		pattern := likePattern(filter.Query)
		query = query.Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, pattern, pattern)
	}

	return r.find(query)
}

func (r *productRepository) CountProducts() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Product{}).Count(&count).Error; err != nil {
		logger.Error("Failed to count products in database", err)
		return 0, err
	}
	return count, nil
}

func (r *productRepository) find(query *gorm.DB) ([]model.Product, error) {
	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		logger.Error("Failed to list products from database", err)
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}
