package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/featherwood/featherwood-backend/config"
	"github.com/featherwood/featherwood-backend/internal/app/controller"
	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/repository/memory"
	"github.com/featherwood/featherwood-backend/internal/app/service"
	"github.com/featherwood/featherwood-backend/internal/middleware"
	"github.com/featherwood/featherwood-backend/internal/router"
	"github.com/featherwood/featherwood-backend/internal/seed"
	"github.com/featherwood/featherwood-backend/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type TestServer struct {
	Router *gin.Engine
	Store  *memory.Store
	User   *model.User
}

// setupIntegrationTest boots the full router over a seeded in-memory store.
// No seed documents exist, so the default product and project are used.
func setupIntegrationTest(t *testing.T) *TestServer {
	store := memory.NewStore()

	opts := seed.Options{
		ProductsLocation: t.TempDir() + "/products.json",
		ProjectsLocation: t.TempDir() + "/projects.json",
		DemoUser: seed.DemoUser{
			Username: "demo",
			Email:    "demo@featherwood.in",
			Password: "featherwood-demo",
			FullName: "Demo Customer",
		},
		PasswordCost: bcrypt.MinCost,
	}
	_, err := seed.NewLoader(store, storage.NewDocumentStore(nil), opts).Load(context.Background())
	require.NoError(t, err)

	user, err := store.FindUserByUsername("demo")
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{GinMode: gin.TestMode},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
	r := router.NewRouter(
		controller.NewCatalogController(service.NewCatalogService(store, store)),
		controller.NewProjectController(service.NewProjectService(store)),
		controller.NewContentController(service.NewBlogService(store), service.NewTestimonialService(store)),
		controller.NewConsultationController(service.NewConsultationService(store)),
		controller.NewCartController(service.NewCartService(store, store, store)),
		controller.NewWishlistController(service.NewWishlistService(store, store, store)),
		cfg,
	)

	return &TestServer{Router: r.Setup(), Store: store, User: user}
}

func (s *TestServer) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), w.Body.String())
	return response
}

func TestIntegration_HealthAndRequestID(t *testing.T) {
	server := setupIntegrationTest(t)

	w := server.request(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode(t, w)["status"])
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestIntegration_SeededCatalog(t *testing.T) {
	server := setupIntegrationTest(t)

	w := server.request(t, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 5, decode(t, w)["count"])

	w = server.request(t, http.MethodGet, "/api/v1/products?category=living-room&min_price=129900&max_price=129900&material=velvet", nil)
	require.Equal(t, http.StatusOK, w.Code)
	products := decode(t, w)["products"].([]interface{})
	require.Len(t, products, 1)
	assert.Equal(t, "f000", products[0].(map[string]interface{})["id"])

	w = server.request(t, http.MethodGet, "/api/v1/products?category=office", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode(t, w)["count"])

	w = server.request(t, http.MethodGet, "/api/v1/projects/contemporary-urban-kitchen", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = server.request(t, http.MethodGet, "/api/v1/blog/recent", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, decode(t, w)["count"])
}

func TestIntegration_GuestCheckoutFlow(t *testing.T) {
	server := setupIntegrationTest(t)

	for i := 0; i < 2; i++ {
		w := server.request(t, http.MethodPost, "/api/v1/cart", map[string]interface{}{
			"session_id": "guest-abc",
			"product_id": "f000",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := server.request(t, http.MethodGet, "/api/v1/cart?session_id=guest-abc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart := decode(t, w)
	assert.Len(t, cart["items"], 1)
	assert.EqualValues(t, 2, cart["count"])
	assert.EqualValues(t, 259800, cart["total"])
	assert.Equal(t, "2598.00", cart["total_formatted"])

	w = server.request(t, http.MethodDelete, "/api/v1/cart?session_id=guest-abc", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = server.request(t, http.MethodGet, "/api/v1/cart?session_id=guest-abc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode(t, w)["count"])
}

func TestIntegration_WishlistAndLeads(t *testing.T) {
	server := setupIntegrationTest(t)

	w := server.request(t, http.MethodPost, "/api/v1/wishlist/toggle", map[string]interface{}{
		"user_id":    server.User.ID,
		"product_id": "f000",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["in_wishlist"])

	w = server.request(t, http.MethodPost, "/api/v1/consultation-requests", map[string]interface{}{
		"full_name":    "Riya Kapoor",
		"email":        "riya@example.com",
		"phone_number": "98200 55555",
		"project_type": "Modular Kitchen",
		"description":  "Parallel kitchen, 8x10",
		"budget_range": "2L-5L",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	requests, err := server.Store.ListConsultationRequests()
	require.NoError(t, err)
	require.Len(t, requests, 1)
	require.NotNil(t, requests[0].BudgetRange)
	assert.Equal(t, "2L-5L", *requests[0].BudgetRange)
}
