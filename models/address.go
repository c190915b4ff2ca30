package models

import "time"

// ShippingAddress belongs to exactly one username. At most one address
// per username has IsDefault set; the write paths clear other defaults
// in the same transaction that sets a new one.
type ShippingAddress struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"index;not null" json:"username"`
	FullName     string    `gorm:"not null" json:"full_name"`
	PhoneNumber  string    `gorm:"not null" json:"phone_number"`
	AddressLine1 string    `gorm:"not null" json:"address_line1"`
	AddressLine2 string    `json:"address_line2,omitempty"`
	City         string    `gorm:"not null" json:"city"`
	Province     string    `gorm:"not null" json:"province"`
	PostalCode   string    `gorm:"not null" json:"postal_code"`
	Country      string    `gorm:"not null" json:"country"`
	IsDefault    bool      `gorm:"default:false" json:"is_default"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
