package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending     OrderStatus = "pending"       // Order placed, awaiting confirmation
	OrderStatusConfirmed   OrderStatus = "confirmed"     // Confirmed by seller
	OrderStatusReadyToShip OrderStatus = "ready_to_ship" // Packed and ready for dispatch
	OrderStatusShipped     OrderStatus = "shipped"       // Out for delivery
	OrderStatusDelivered   OrderStatus = "delivered"     // Customer received the item
	OrderStatusCancelled   OrderStatus = "cancelled"     // Cancelled before confirmation
)

// orderTransitions is the set of legal forward moves. cancelled is an
// absorbing state reachable only from pending.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:     {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:   {OrderStatusReadyToShip},
	OrderStatusReadyToShip: {OrderStatusShipped},
	OrderStatusShipped:     {OrderStatusDelivered},
}

// ParseOrderStatus maps a request string onto a known status.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusReadyToShip,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

// CanTransition reports whether an order may move from one status to the next.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is one purchased line item. TotalAmount is fixed at creation
// time as price multiplied by quantity and never recomputed.
type Order struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Username       string          `gorm:"index;not null" json:"username"` // buyer
	SellerUsername string          `gorm:"index" json:"seller_username"`
	ProductID      string          `gorm:"not null" json:"product_id"`
	ProductName    string          `gorm:"not null" json:"product_name"`
	Price          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Quantity       int             `gorm:"not null" json:"quantity"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	Status         OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentMethod  string          `json:"payment_method"`
	DeliveryOption string          `json:"delivery_option"`
	IDURL          string          `json:"id_url"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
