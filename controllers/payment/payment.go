package paymentControllers

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type CheckoutRequest struct {
	Total float64 `json:"total" binding:"required,gt=0"`
}

type VerifyRequest struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

// generateReceipt builds a fresh receipt id for the processor.
func generateReceipt() string {
	return "rcpt_" + time.Now().Format("20060102150405") + "_" + uuid.NewString()[:8]
}

// POST /payment/checkout
// Converts the display-unit total to paise and asks the processor for a
// payment intent.
func CheckoutHandler(creator IntentCreator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "total is required"})
			return
		}

		amountPaise := int64(math.Round(req.Total * 100))
		orderID, err := creator.CreateIntent(amountPaise, generateReceipt())
		if err != nil {
			logrus.WithFields(logrus.Fields{"amount": amountPaise, "error": err.Error()}).Error("Payment intent creation failed")
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"orderId": orderID,
			"amount":  amountPaise,
		})
	}
}

// POST /payment/verify
func VerifyHandler(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "missing payment fields"})
			return
		}

		if !VerifySignature(secret, req.OrderID, req.PaymentID, req.Signature) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment verification failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment verified successfully"})
	}
}
