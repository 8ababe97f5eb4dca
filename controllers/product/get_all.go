package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/arjunmenon-dev/storefront-api/models"
	"github.com/arjunmenon-dev/storefront-api/utils"
)

// GetProducts lists the catalog with optional search, category, gender
// and price-range filters.
func GetProducts(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		category := c.Query("category")
		gender := c.Query("gender")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}

		// Cache whole responses keyed by the raw query string
		cacheKey := "products:" + c.Request.URL.RawQuery
		var products []models.Product
		if rdb != nil {
			if hit, err := utils.GetCache(c.Request.Context(), rdb, cacheKey, &products); err == nil && hit {
				c.JSON(http.StatusOK, products)
				return
			}
		}

		query := db.Model(&models.Product{})

		if search != "" {
			likePattern := "%" + strings.ToLower(search) + "%"
			query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", likePattern, likePattern)
		}
		if category != "" {
			query = query.Where("category = ?", category)
		}
		if gender != "" {
			query = query.Where("gender = ?", gender)
		}
		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		// Whitelist sortable columns to keep the order clause safe
		switch sortBy {
		case "price", "name", "created_at":
		default:
			sortBy = "created_at"
		}
		orderClause := fmt.Sprintf("%s %s", sortBy, sortOrder)

		if err := query.Order(orderClause).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		if rdb != nil {
			_ = utils.SetCache(c.Request.Context(), rdb, cacheKey, products, productCacheTTL)
		}
		c.JSON(http.StatusOK, products)
	}
}
