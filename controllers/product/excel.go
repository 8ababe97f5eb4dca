package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/arjunmenon-dev/storefront-api/middleware"
	"github.com/arjunmenon-dev/storefront-api/models"
)

// ImportProductsFromExcel bulk-creates or updates the calling seller's
// products from an uploaded sheet. Columns follow the export layout:
// ID, Name, Description, Price, Category, Gender, Image.
func ImportProductsFromExcel(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}
		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			description := get(2)
			price, priceErr := strconv.ParseFloat(get(3), 64)
			category := get(4)
			gender := get(5)
			image := get(6)

			if name == "" || image == "" || priceErr != nil || price < 0 {
				skippedCount++
				continue
			}

			product := models.Product{
				Name:        name,
				Description: description,
				Price:       price,
				Category:    category,
				Gender:      gender,
				Image:       image,
				SellerID:    sellerID,
			}

			if idStr != "" {
				id, err := strconv.Atoi(idStr)
				if err != nil {
					skippedCount++
					continue
				}
				var existing models.Product
				// Update only rows the seller owns; an id that does not
				// resolve for the caller is skipped, never re-created
				if err := db.Where("id = ? AND seller_id = ?", id, sellerID).First(&existing).Error; err != nil {
					skippedCount++
					continue
				}
				existing.Name = product.Name
				existing.Description = product.Description
				existing.Price = product.Price
				existing.Category = product.Category
				existing.Gender = product.Gender
				existing.Image = product.Image
				if err := db.Save(&existing).Error; err == nil {
					updatedCount++
				} else {
					skippedCount++
				}
				continue
			}

			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		invalidateProductCache(rdb)
		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
