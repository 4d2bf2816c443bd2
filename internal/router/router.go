package router

import (
	"net/http"

	"github.com/featherwood/featherwood-backend/config"
	"github.com/featherwood/featherwood-backend/internal/app/controller"
	"github.com/featherwood/featherwood-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	catalogController      *controller.CatalogController
	projectController      *controller.ProjectController
	contentController      *controller.ContentController
	consultationController *controller.ConsultationController
	cartController         *controller.CartController
	wishlistController     *controller.WishlistController
	config                 *config.Config
}

func NewRouter(
	catalogController *controller.CatalogController,
	projectController *controller.ProjectController,
	contentController *controller.ContentController,
	consultationController *controller.ConsultationController,
	cartController *controller.CartController,
	wishlistController *controller.WishlistController,
	cfg *config.Config,
) *Router {
	return &Router{
		catalogController:      catalogController,
		projectController:      projectController,
		contentController:      contentController,
		consultationController: consultationController,
		cartController:         cartController,
		wishlistController:     wishlistController,
		config:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "FeatherWood API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		categories := v1.Group("/categories")
		{
			categories.GET("", r.catalogController.ListCategories)
			categories.GET("/:slug", r.catalogController.GetCategory)
		}

		products := v1.Group("/products")
		{
			products.GET("", r.catalogController.ListProducts)
			products.GET("/featured", r.catalogController.ListFeaturedProducts)
			products.GET("/:slug", r.catalogController.GetProduct)
		}

		projects := v1.Group("/projects")
		{
			projects.GET("", r.projectController.ListProjects)
			projects.GET("/featured", r.projectController.ListFeaturedProjects)
			projects.GET("/:slug", r.projectController.GetProject)
		}

		blog := v1.Group("/blog")
		{
			blog.GET("", r.contentController.ListPosts)
			blog.GET("/recent", r.contentController.RecentPosts)
			blog.GET("/:slug", r.contentController.GetPost)
		}

		v1.GET("/testimonials", r.contentController.ListTestimonials)
		v1.POST("/consultation-requests", r.consultationController.CreateRequest)

		cart := v1.Group("/cart")
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("", r.cartController.AddToCart)
			cart.DELETE("", r.cartController.ClearCart)
			cart.PATCH("/:id", r.cartController.UpdateCartItem)
			cart.DELETE("/:id", r.cartController.RemoveCartItem)
		}

		wishlist := v1.Group("/wishlist")
		{
			wishlist.GET("", r.wishlistController.GetWishlist)
			wishlist.POST("", r.wishlistController.AddToWishlist)
			wishlist.DELETE("", r.wishlistController.RemoveFromWishlist)
			wishlist.POST("/toggle", r.wishlistController.ToggleWishlist)
			wishlist.GET("/check", r.wishlistController.CheckWishlist)
		}
	}

	return router
}
