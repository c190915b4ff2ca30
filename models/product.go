package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Category string

const (
	CategoryPc     Category = "Pc"
	CategoryMobile Category = "Mobile"
	CategoryWatch  Category = "Watch"
)

// ValidCategory reports whether s is a known product category.
func ValidCategory(s string) bool {
	switch Category(s) {
	case CategoryPc, CategoryMobile, CategoryWatch:
		return true
	}
	return false
}

type Product struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID      string          `gorm:"uniqueIndex;not null" json:"product_id"`
	SellerUsername string          `gorm:"index;not null;uniqueIndex:idx_seller_product_name" json:"seller_username"`
	ProductName    string          `gorm:"not null;uniqueIndex:idx_seller_product_name" json:"product_name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Category       Category        `gorm:"type:VARCHAR(10);not null" json:"category"`
	IDURL          string          `json:"id_url"` // product image
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`
}
