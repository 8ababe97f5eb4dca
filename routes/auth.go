package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arjunmenon-dev/storefront-api/config"
	authControllers "github.com/arjunmenon-dev/storefront-api/controllers/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", authControllers.SignupHandler(db))
		authGroup.POST("/login", authControllers.LoginHandler(db, cfg.JWTSecret))
	}
}
