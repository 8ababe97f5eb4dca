package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/arjunmenon-dev/storefront-api/models"
	"github.com/arjunmenon-dev/storefront-api/utils"
)

const productCacheTTL = 5 * time.Minute

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		cacheKey := "product:" + idParam
		var product models.Product
		if rdb != nil {
			if hit, err := utils.GetCache(c.Request.Context(), rdb, cacheKey, &product); err == nil && hit {
				c.JSON(http.StatusOK, product)
				return
			}
		}

		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		if rdb != nil {
			_ = utils.SetCache(c.Request.Context(), rdb, cacheKey, product, productCacheTTL)
		}
		c.JSON(http.StatusOK, product)
	}
}
