// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-gateway/internal/upstream"
)

// SetupCatalogRoutes sets up the public storefront catalog routes
func SetupCatalogRoutes(rg *gin.RouterGroup, api *upstream.Client, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(api, cfg)
	categoryHandler := handlers.NewCategoryHandler(api)
	reviewHandler := handlers.NewReviewHandler(api)

	products := rg.Group("/products")
	products.Use(middleware.OptionalAuthMiddleware(cfg)) // Optional auth for personalization
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.GET("/:id/reviews", reviewHandler.ListReviews)
	}

	categories := rg.Group("/categories")
	categories.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		categories.GET("", categoryHandler.ListCategories)
		categories.GET("/tree", categoryHandler.GetCategoryTree)
	}

	// Submitting and voting require a signed-in customer
	reviews := rg.Group("")
	reviews.Use(middleware.AuthMiddleware(cfg))
	{
		reviews.POST("/products/:id/reviews", reviewHandler.CreateReview)
		reviews.POST("/reviews/:id/vote", reviewHandler.VoteReview)
	}
}

// SetupCartRoutes sets up shopping cart routes. Carts work for anonymous
// sessions too, so auth is optional throughout.
func SetupCartRoutes(rg *gin.RouterGroup, redisClient *redis.Client, api *upstream.Client, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(redisClient, api, cfg)

	cart := rg.Group("/cart")
	cart.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)
	}
}

// SetupWishlistRoutes sets up wishlist routes. Every wishlist route
// requires authentication; anonymous requests are rejected before any
// upstream call is made.
func SetupWishlistRoutes(rg *gin.RouterGroup, redisClient *redis.Client, api *upstream.Client, cfg *config.Config) {
	wishlistHandler := handlers.NewWishlistHandler(redisClient, api)

	wishlist := rg.Group("/wishlist")
	wishlist.Use(middleware.AuthMiddleware(cfg))
	{
		wishlist.GET("", wishlistHandler.GetItems)
		wishlist.GET("/count", wishlistHandler.GetCount)
		wishlist.GET("/check/:id", wishlistHandler.CheckItem)
		wishlist.POST("/items", wishlistHandler.AddItem)
		wishlist.DELETE("/items/:id", wishlistHandler.RemoveItem)
	}
}

// SetupOrderRoutes sets up customer order routes
func SetupOrderRoutes(rg *gin.RouterGroup, api *upstream.Client, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(api)

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.POST("/:id/cancel", orderHandler.CancelOrder)
	}
}

// SetupAdminRoutes sets up the back-office routes
func SetupAdminRoutes(rg *gin.RouterGroup, api *upstream.Client, cfg *config.Config) {
	adminHandler := handlers.NewAdminHandler(api)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/products", adminHandler.ListProducts)
		admin.POST("/products", adminHandler.CreateProduct)
		admin.PUT("/products/:id", adminHandler.UpdateProduct)
		admin.DELETE("/products/:id", adminHandler.DeleteProduct)

		admin.GET("/suppliers/:id/products", adminHandler.ListSupplierProducts)

		admin.GET("/orders", adminHandler.ListOrders)

		admin.POST("/categories", adminHandler.CreateCategory)
		admin.PUT("/categories/:id", adminHandler.UpdateCategory)
		admin.DELETE("/categories/:id", adminHandler.DeleteCategory)
	}
}

// SetupRoutes sets up all API routes
func SetupRoutes(rg *gin.RouterGroup, redisClient *redis.Client, api *upstream.Client, cfg *config.Config) {
	SetupCatalogRoutes(rg, api, cfg)
	SetupCartRoutes(rg, redisClient, api, cfg)
	SetupWishlistRoutes(rg, redisClient, api, cfg)
	SetupOrderRoutes(rg, api, cfg)
	SetupAdminRoutes(rg, api, cfg)
}
