package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/arjunmenon-dev/storefront-api/config"
	productcontroller "github.com/arjunmenon-dev/storefront-api/controllers/product"
	"github.com/arjunmenon-dev/storefront-api/middleware"
)

// SetupSellerRoutes registers product management endpoints, gated on the
// seller role flag.
func SetupSellerRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {
	seller := r.Group("/seller")
	seller.Use(middleware.ValidateToken(cfg.JWTSecret), middleware.SellerOnly)
	{
		seller.POST("/products", productcontroller.CreateProduct(db, rdb))
		seller.PUT("/products/:id", productcontroller.UpdateProduct(db, rdb))
		seller.DELETE("/products/:id", productcontroller.DeleteProduct(db, rdb))

		// Bulk catalog management via spreadsheets
		seller.GET("/products/export", productcontroller.ExportProductsToExcel(db))
		seller.POST("/products/import", productcontroller.ImportProductsFromExcel(db, rdb))
	}
}
