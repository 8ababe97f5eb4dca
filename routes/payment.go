package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arjunmenon-dev/storefront-api/config"
	paymentControllers "github.com/arjunmenon-dev/storefront-api/controllers/payment"
	"github.com/arjunmenon-dev/storefront-api/middleware"
)

func SetupPaymentRoutes(r *gin.Engine, cfg *config.Config) {
	client := paymentControllers.NewClient(cfg.RazorpayKeyID, cfg.RazorpaySecret, cfg.RazorpayAPIURL)

	payment := r.Group("/payment")
	payment.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		payment.POST("/checkout", paymentControllers.CheckoutHandler(client))
		payment.POST("/verify", paymentControllers.VerifyHandler(cfg.RazorpaySecret))
	}
}
