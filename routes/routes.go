package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/arjunmenon-dev/storefront-api/config"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db, cfg)

	// Buyer routes (JWT-protected): profile, cart, addresses, browsing
	SetupUserRoutes(r, db, rdb, cfg)

	// Seller routes (JWT + seller role)
	SetupSellerRoutes(r, db, rdb, cfg)

	// Order routes
	SetupOrderRoutes(r, db, cfg)

	// Payment routes
	SetupPaymentRoutes(r, cfg)
}
