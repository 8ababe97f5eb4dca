package productcontroller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/arjunmenon-dev/storefront-api/middleware"
	"github.com/arjunmenon-dev/storefront-api/models"
	"github.com/arjunmenon-dev/storefront-api/utils"
)

type CreateProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Category    string   `json:"category"`
	Gender      string   `json:"gender"`
	Image       string   `json:"image" binding:"required"`
}

// invalidateProductCache drops cached listings and details after any
// catalog mutation.
func invalidateProductCache(rdb *redis.Client) {
	if rdb == nil {
		return
	}
	_ = utils.DeleteCache(context.Background(), rdb, "products:*")
	_ = utils.DeleteCache(context.Background(), rdb, "product:*")
}

// CreateProduct registers a new product owned by the calling seller.
func CreateProduct(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       *input.Price,
			Category:    input.Category,
			Gender:      input.Gender,
			Image:       input.Image,
			SellerID:    sellerID,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		invalidateProductCache(rdb)
		c.JSON(http.StatusCreated, product)
	}
}
