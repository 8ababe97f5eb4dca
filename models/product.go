package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null;check:price >= 0" json:"price"`
	Category    string    `gorm:"index" json:"category"`
	Gender      string    `gorm:"index" json:"gender"` // e.g. "men", "women", "unisex"
	Image       string    `gorm:"not null" json:"image"`
	SellerID    uint      `gorm:"index;not null" json:"seller_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
