// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/animestreet/storefront-api/internal/catalog"
	"github.com/animestreet/storefront-api/internal/config"
	"github.com/animestreet/storefront-api/internal/handlers"
	"github.com/animestreet/storefront-api/internal/middleware"
	"github.com/animestreet/storefront-api/internal/services"
)

func Initialize(cfg *config.Config) *gin.Engine {
	// Initialize stores and services
	store := catalog.NewStore(catalog.Seed())
	catalogService := services.NewCatalogService(store)
	cartService := services.NewCartService()
	checkoutService := services.NewCheckoutService(cfg.Checkout, cartService)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(catalogService)
	categoryHandler := handlers.NewCategoryHandler(catalogService)
	searchHandler := handlers.NewSearchHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.SessionHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.CartSession())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Product routes
	products := r.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/featured", productHandler.GetFeaturedProducts)
		products.GET("/:id", productHandler.GetProduct)
	}

	// Category and search routes
	r.GET("/categories", categoryHandler.GetCategories)
	r.GET("/search", searchHandler.SearchProducts)

	// Cart routes
	cart := r.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("", cartHandler.AddItem)
		cart.DELETE("", cartHandler.ClearCart)
		cart.PATCH("/:id", cartHandler.UpdateItem)
		cart.DELETE("/:id", cartHandler.RemoveItem)
	}

	// Checkout routes
	checkout := r.Group("/checkout")
	checkout.Use(middleware.CheckoutRateLimit())
	{
		checkout.POST("", checkoutHandler.Checkout)
	}
	r.GET("/orders/:id", checkoutHandler.GetOrder)

	return r
}
