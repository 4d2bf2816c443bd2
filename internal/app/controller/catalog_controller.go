package controller

import (
	"net/http"
	"strings"

	"github.com/featherwood/featherwood-backend/internal/app/service"
	apperrors "github.com/featherwood/featherwood-backend/internal/errors"
	"github.com/featherwood/featherwood-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListCategories returns every category
// GET /api/v1/categories
func (ctrl *CatalogController) ListCategories(c *gin.Context) {
	categories, err := ctrl.catalogService.ListCategories()
	if err != nil {
		respondError(c, err, "categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// GetCategory returns a category by slug
// GET /api/v1/categories/:slug
func (ctrl *CatalogController) GetCategory(c *gin.Context) {
	category, err := ctrl.catalogService.GetCategory(c.Param("slug"))
	if err != nil {
		respondError(c, err, "category")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
	})
}

// ListProducts lists, searches and filters products
// GET /api/v1/products?category=&min_price=&max_price=&material=&search=
func (ctrl *CatalogController) ListProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	minPrice, err := parseInt64Query(c, "min_price")
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidPrice, err.Error())
		return
	}
	maxPrice, err := parseInt64Query(c, "max_price")
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidPrice, err.Error())
		return
	}

	query := service.ProductQuery{
		CategorySlug: strings.TrimSpace(c.Query("category")),
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		Material:     strings.TrimSpace(c.Query("material")),
		Search:       c.Query("search"),
	}

	products, err := ctrl.catalogService.ListProducts(query)
	if err != nil {
		respondError(c, err, "products")
		return
	}

	log.Debug("Products listed", map[string]interface{}{
		"count": len(products),
	})

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// ListFeaturedProducts
// GET /api/v1/products/featured
func (ctrl *CatalogController) ListFeaturedProducts(c *gin.Context) {
	products, err := ctrl.catalogService.ListFeaturedProducts()
	if err != nil {
		respondError(c, err, "featured products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProduct returns a product by slug
// GET /api/v1/products/:slug
func (ctrl *CatalogController) GetProduct(c *gin.Context) {
	product, err := ctrl.catalogService.GetProduct(c.Param("slug"))
	if err != nil {
		respondError(c, err, "product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
	})
}
