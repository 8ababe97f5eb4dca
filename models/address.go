package models

import "time"

// DefaultCountry is stamped onto every address; there is no country
// field on the create endpoint.
const DefaultCountry = "India"

type Address struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	Street     string    `gorm:"not null" json:"street"`
	City       string    `gorm:"not null" json:"city"`
	State      string    `gorm:"not null" json:"state"`
	PostalCode string    `gorm:"not null" json:"postal_code"`
	Country    string    `gorm:"not null" json:"country"`
	CreatedAt  time.Time `json:"created_at"`
}
