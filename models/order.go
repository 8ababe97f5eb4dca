package models

import "time"

type OrderStatus string

const (
	OrderStatusPlaced   OrderStatus = "placed"
	OrderStatusCanceled OrderStatus = "canceled" // terminal
)

// ShippingAddress is a value copy of the address taken at checkout.
// Editing the source address later must not touch existing orders.
type ShippingAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Order holds exactly one product line. A multi-item checkout fans out
// into one Order row per cart line.
type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"index;not null" json:"user_id"`
	ProductID       uint            `gorm:"not null" json:"product_id"`
	Product         Product         `gorm:"foreignKey:ProductID" json:"product"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:ship_" json:"shipping_address"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'placed'" json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}
