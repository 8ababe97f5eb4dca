package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arjunmenon-dev/storefront-api/config"
	orderControllers "github.com/arjunmenon-dev/storefront-api/controllers/order"
	"github.com/arjunmenon-dev/storefront-api/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		orders.POST("", orderControllers.CreateOrderHandler(db))
		orders.GET("", orderControllers.ListOrdersHandler(db))
		orders.DELETE("/:orderId", orderControllers.CancelOrderHandler(db))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)
	}
}
