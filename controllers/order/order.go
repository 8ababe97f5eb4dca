package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/arjunmenon-dev/storefront-api/middleware"
	"github.com/arjunmenon-dev/storefront-api/models"
)

// -------- Request Structs --------

type OrderLineInput struct {
	Product  uint `json:"product" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

// AddressInput is either a reference to a stored address ({"id": N}) or
// an inline address. Exactly one form must be supplied.
type AddressInput struct {
	ID         *uint  `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

type CreateOrderRequest struct {
	Products []OrderLineInput `json:"products" binding:"required,min=1,dive"`
	Address  *AddressInput    `json:"address" binding:"required"`
}

// resolveAddress turns the tagged input into the snapshot embedded in
// each order row. A reference is looked up within the caller's own
// addresses; an inline address is used as-is with the default country.
func resolveAddress(db *gorm.DB, userID uint, input *AddressInput) (models.ShippingAddress, int, error) {
	if input.ID != nil {
		var addr models.Address
		err := db.Where("id = ? AND user_id = ?", *input.ID, userID).First(&addr).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ShippingAddress{}, http.StatusNotFound, errors.New("address not found")
		} else if err != nil {
			return models.ShippingAddress{}, http.StatusInternalServerError, errors.New("failed to resolve address")
		}
		return models.ShippingAddress{
			Street:     addr.Street,
			City:       addr.City,
			State:      addr.State,
			PostalCode: addr.PostalCode,
			Country:    addr.Country,
		}, http.StatusOK, nil
	}

	if input.Street == "" || input.City == "" || input.State == "" || input.PostalCode == "" {
		return models.ShippingAddress{}, http.StatusBadRequest, errors.New("address requires street, city, state and postal_code")
	}
	return models.ShippingAddress{
		Street:     input.Street,
		City:       input.City,
		State:      input.State,
		PostalCode: input.PostalCode,
		Country:    models.DefaultCountry,
	}, http.StatusOK, nil
}

// -------- Handlers --------

// POST /orders
//
// Fan-out: one Order row per line item, saved sequentially with no
// transaction around the loop. A failure partway through leaves the
// earlier rows committed; there is no compensation step.
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		snapshot, status, err := resolveAddress(db, userID, req.Address)
		if err != nil {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		var createdIDs []uint
		for _, line := range req.Products {
			order := models.Order{
				UserID:          userID,
				ProductID:       line.Product,
				Quantity:        line.Quantity,
				ShippingAddress: snapshot,
				Status:          models.OrderStatusPlaced,
				CreatedAt:       time.Now(),
			}
			if err := db.Create(&order).Error; err != nil {
				logrus.WithFields(logrus.Fields{
					"user_id":    userID,
					"product_id": line.Product,
					"committed":  len(createdIDs),
					"error":      err.Error(),
				}).Error("Order fan-out failed partway")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order"})
				return
			}
			createdIDs = append(createdIDs, order.ID)
		}

		var orders []models.Order
		if err := db.Preload("Product").Where("id IN ?", createdIDs).
			Order("id ASC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		for _, o := range orders {
			broadcastNewOrder(o)
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "orders": orders})
	}
}

// GET /orders
func ListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.Preload("Product").
			Where("user_id = ? AND status <> ?", userID, models.OrderStatusCanceled).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// DELETE /orders/:orderId
//
// Lookup is scoped to the caller, so cancelling someone else's order
// reads as not found.
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orderID := c.Param("orderId")

		var order models.Order
		if err := db.Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if order.Status == models.OrderStatusCanceled {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order already canceled"})
			return
		}

		if err := db.Model(&order).Update("status", models.OrderStatusCanceled).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order canceled", "order_id": order.ID})
	}
}
