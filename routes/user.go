package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/arjunmenon-dev/storefront-api/config"
	addressControllers "github.com/arjunmenon-dev/storefront-api/controllers/address"
	cartControllers "github.com/arjunmenon-dev/storefront-api/controllers/cart"
	productcontroller "github.com/arjunmenon-dev/storefront-api/controllers/product"
	userControllers "github.com/arjunmenon-dev/storefront-api/controllers/user"
	"github.com/arjunmenon-dev/storefront-api/middleware"
)

// SetupUserRoutes registers the buyer-facing endpoints. Catalog browsing
// is public; everything else requires a bearer token.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {
	// Browse catalog
	r.GET("/products", productcontroller.GetProducts(db, rdb))
	r.GET("/products/:id", productcontroller.GetProductByID(db, rdb))

	auth := middleware.ValidateToken(cfg.JWTSecret)

	// Profile
	r.GET("/me", auth, userControllers.GetUser(db))
	r.PUT("/me", auth, userControllers.UpdateUser(db))

	// Shopping cart
	cartGroup := r.Group("/cart")
	cartGroup.Use(auth)
	{
		cartGroup.GET("", cartControllers.GetCartHandler(db))
		cartGroup.POST("/add", cartControllers.AddItemHandler(db))
		cartGroup.PUT("/items/:itemId", cartControllers.UpdateItemHandler(db))
		cartGroup.DELETE("/items/:itemId", cartControllers.RemoveItemHandler(db))
		cartGroup.DELETE("/clear", cartControllers.ClearCartHandler(db))
	}

	// Address book
	addressGroup := r.Group("/addresses")
	addressGroup.Use(auth)
	{
		addressGroup.POST("", addressControllers.CreateAddressHandler(db))
		addressGroup.GET("", addressControllers.ListAddressesHandler(db))
	}
}
