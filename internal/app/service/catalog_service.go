package service

import (
	"errors"
	"strings"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/repository"
	"github.com/featherwood/featherwood-backend/pkg/logger"
)

// ProductQuery mirrors the product listing query string. Empty strings and
// nil bounds impose no constraint; everything supplied is ANDed.
type ProductQuery struct {
	CategorySlug string
	MinPrice     *int64
	MaxPrice     *int64
	Material     string
	Search       string
}

func (q ProductQuery) logFields() map[string]interface{} {
	fields := map[string]interface{}{
		"category": q.CategorySlug,
		"material": q.Material,
		"search":   q.Search,
	}
	if q.MinPrice != nil {
		fields["min_price"] = *q.MinPrice
	}
	if q.MaxPrice != nil {
		fields["max_price"] = *q.MaxPrice
	}
	return fields
}

type CatalogService interface {
	ListCategories() ([]model.ProductCategory, error)
	GetCategory(slug string) (*model.ProductCategory, error)
	ListProducts(query ProductQuery) ([]model.Product, error)
	ListFeaturedProducts() ([]model.Product, error)
	GetProduct(slug string) (*model.Product, error)
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

func NewCatalogService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

func (s *catalogService) ListCategories() ([]model.ProductCategory, error) {
	categories, err := s.categoryRepo.ListCategories()
	if err != nil {
		logger.Error("Failed to list categories", err)
		return nil, err
	}
	return categories, nil
}

func (s *catalogService) GetCategory(slug string) (*model.ProductCategory, error) {
	category, err := s.categoryRepo.FindCategoryBySlug(slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		logger.Error("Failed to fetch category", err, map[string]interface{}{
			"slug": slug,
		})
		return nil, err
	}
	return category, nil
}

func (s *catalogService) ListProducts(query ProductQuery) ([]model.Product, error) {
	logger.Debug("Listing products", query.logFields())

	filter := repository.ProductFilter{
		MinPrice: query.MinPrice,
		MaxPrice: query.MaxPrice,
		Query:    strings.TrimSpace(query.Search),
	}
	if material := strings.TrimSpace(query.Material); material != "" {
		filter.Material = &material
	}

	if query.CategorySlug != "" {
		category, err := s.categoryRepo.FindCategoryBySlug(query.CategorySlug)
		if errors.Is(err, repository.ErrNotFound) {
			logger.Debug("Unknown category slug, returning no products", map[string]interface{}{
				"category": query.CategorySlug,
			})
			return []model.Product{}, nil
		}
		if err != nil {
			logger.Error("Failed to resolve category", err, query.logFields())
			return nil, err
		}
		filter.CategoryID = &category.ID
	}

	products, err := s.productRepo.FilterProducts(filter)
	if err != nil {
		logger.Error("Failed to list products", err, query.logFields())
		return nil, err
	}
	return products, nil
}

func (s *catalogService) ListFeaturedProducts() ([]model.Product, error) {
	products, err := s.productRepo.ListFeaturedProducts()
	if err != nil {
		logger.Error("Failed to list featured products", err)
		return nil, err
	}
	return products, nil
}

func (s *catalogService) GetProduct(slug string) (*model.Product, error) {
	product, err := s.productRepo.FindProductBySlug(slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("Product not found", map[string]interface{}{
				"slug": slug,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product", err, map[string]interface{}{
			"slug": slug,
		})
		return nil, err
	}
	return product, nil
}
