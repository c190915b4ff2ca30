package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem holds one line of a user's cart. The (username, product_id)
// pair is unique; repeat adds merge into the existing row by
// incrementing quantity instead of inserting a duplicate.
type CartItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Username    string          `gorm:"not null;uniqueIndex:idx_cart_owner_product" json:"username"`
	ProductID   string          `gorm:"not null;uniqueIndex:idx_cart_owner_product" json:"product_id"`
	ProductName string          `gorm:"not null" json:"product_name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"` // snapshot, not re-synced with Product
	IDURL       string          `json:"id_url"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	AddedAt     time.Time       `json:"added_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
