package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/repository/memory"
	"github.com/featherwood/featherwood-backend/internal/app/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	router *gin.Engine
	store  *memory.Store
	user   *model.User
}

// setupTestAPI wires every controller onto an in-memory store holding two
// categories, three products, two projects, two posts and two testimonials.
func setupTestAPI(t *testing.T) *testAPI {
	store := memory.NewStore()

	user := &model.User{Username: "meera", Email: "meera@example.com", PasswordHash: "hash", FullName: "Meera Rao"}
	require.NoError(t, store.CreateUser(user))

	require.NoError(t, store.CreateCategory(&model.ProductCategory{Name: "Living Room", Slug: "living-room"}))
	require.NoError(t, store.CreateCategory(&model.ProductCategory{Name: "Bedroom", Slug: "bedroom"}))

	products := []model.Product{
		{Title: "Velvet Sofa", Slug: "velvet-sofa", Description: "Three seater", Price: 129900, Category: "Living Room", Material: "Velvet, Teak Wood", InStock: true, IsFeatured: true},
		{Title: "Oak Bed Frame", Slug: "oak-bed-frame", Description: "Queen size frame", Price: 64900, Category: "Bedroom", Material: "Oak Wood", InStock: true},
		{Title: "Rattan Lamp", Slug: "rattan-lamp", Description: "Woven shade", Price: 4900, Category: "Living Room", InStock: true},
	}
	for i := range products {
		require.NoError(t, store.CreateProduct(&products[i]))
	}

	require.NoError(t, store.CreateProject(&model.InteriorProject{Title: "Bandra Loft", Slug: "bandra-loft", Description: "Loft", Category: "Residential", IsFeatured: true}))
	require.NoError(t, store.CreateProject(&model.InteriorProject{Title: "Cafe Fitout", Slug: "cafe-fitout", Description: "Cafe", Category: "Commercial"}))

	require.NoError(t, store.CreateBlogPost(&model.BlogPost{Title: "Older", Slug: "older", Content: "body", Category: "Tips", PublishDate: time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)}))
	require.NoError(t, store.CreateBlogPost(&model.BlogPost{Title: "Newer", Slug: "newer", Content: "body", Category: "Tips", PublishDate: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)}))

	first, second := 1, 2
	require.NoError(t, store.CreateTestimonial(&model.Testimonial{Name: "Second", ProjectType: "Home", Content: "Nice", Rating: 40, DisplayOrder: &second}))
	require.NoError(t, store.CreateTestimonial(&model.Testimonial{Name: "First", ProjectType: "Office", Content: "Great", Rating: 50, DisplayOrder: &first}))

	catalogController := NewCatalogController(service.NewCatalogService(store, store))
	projectController := NewProjectController(service.NewProjectService(store))
	contentController := NewContentController(service.NewBlogService(store), service.NewTestimonialService(store))
	consultationController := NewConsultationController(service.NewConsultationService(store))
	cartController := NewCartController(service.NewCartService(store, store, store))
	wishlistController := NewWishlistController(service.NewWishlistService(store, store, store))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.GET("/categories", catalogController.ListCategories)
	v1.GET("/categories/:slug", catalogController.GetCategory)
	v1.GET("/products", catalogController.ListProducts)
	v1.GET("/products/featured", catalogController.ListFeaturedProducts)
	v1.GET("/products/:slug", catalogController.GetProduct)
	v1.GET("/projects", projectController.ListProjects)
	v1.GET("/projects/featured", projectController.ListFeaturedProjects)
	v1.GET("/projects/:slug", projectController.GetProject)
	v1.GET("/blog", contentController.ListPosts)
	v1.GET("/blog/recent", contentController.RecentPosts)
	v1.GET("/blog/:slug", contentController.GetPost)
	v1.GET("/testimonials", contentController.ListTestimonials)
	v1.POST("/consultation-requests", consultationController.CreateRequest)
	v1.GET("/cart", cartController.GetCart)
	v1.POST("/cart", cartController.AddToCart)
	v1.DELETE("/cart", cartController.ClearCart)
	v1.PATCH("/cart/:id", cartController.UpdateCartItem)
	v1.DELETE("/cart/:id", cartController.RemoveCartItem)
	v1.GET("/wishlist", wishlistController.GetWishlist)
	v1.POST("/wishlist", wishlistController.AddToWishlist)
	v1.DELETE("/wishlist", wishlistController.RemoveFromWishlist)
	v1.POST("/wishlist/toggle", wishlistController.ToggleWishlist)
	v1.GET("/wishlist/check", wishlistController.CheckWishlist)

	return &testAPI{router: router, store: store, user: user}
}

// do sends a request and decodes the JSON body into a map.
func (api *testAPI) do(t *testing.T, method, path string, body interface{}) (int, map[string]interface{}) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), w.Body.String())
	return w.Code, response
}

func listField(t *testing.T, response map[string]interface{}, key string) []interface{} {
	items, ok := response[key].([]interface{})
	require.True(t, ok, "%s should be a JSON array, got %v", key, response[key])
	return items
}

func objectField(t *testing.T, response map[string]interface{}, key string) map[string]interface{} {
	obj, ok := response[key].(map[string]interface{})
	require.True(t, ok, "%s should be a JSON object, got %v", key, response[key])
	return obj
}

func slugsOf(t *testing.T, items []interface{}) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		require.True(t, ok)
		out = append(out, obj["slug"].(string))
	}
	return out
}
