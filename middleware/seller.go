package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SellerOnly gates product management routes. Runs after ValidateToken,
// so the role flag is already in the context.
func SellerOnly(c *gin.Context) {
	isSeller, exists := c.Get("is_seller")
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if ok, _ := isSeller.(bool); !ok {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Seller access required"})
		return
	}
	c.Next()
}
