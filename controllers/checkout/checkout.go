package checkoutControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/StinkyJeans/Ecommerce-sub000/middleware"
	"github.com/StinkyJeans/Ecommerce-sub000/models"
	"github.com/StinkyJeans/Ecommerce-sub000/responses"
	"github.com/StinkyJeans/Ecommerce-sub000/validation"
)

type CheckoutItem struct {
	CartItemID     uint   `json:"cart_item_id"`
	ProductID      string `json:"product_id"`
	ProductName    string `json:"product_name"`
	Price          string `json:"price"`
	Quantity       int    `json:"quantity"`
	SellerUsername string `json:"seller_username"`
	IDURL          string `json:"id_url"`
}

type CheckoutRequest struct {
	Username          string         `json:"username"`
	Items             []CheckoutItem `json:"items"`
	ShippingAddressID uint           `json:"shipping_address_id"`
	PaymentMethod     string         `json:"payment_method"`
	DeliveryOption    string         `json:"delivery_option"`
}

// POST /user/checkout
//
// Converts cart lines into orders. Order creation and cart-row deletion
// run in one transaction: a failure anywhere rolls the whole conversion
// back, leaving neither orphaned orders nor a half-cleared cart.
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			responses.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.Error(c, http.StatusBadRequest, "Invalid request payload")
			return
		}
		if !principal.Owns(req.Username) {
			responses.Error(c, http.StatusForbidden, "Forbidden: cannot check out another user's cart")
			return
		}
		if len(req.Items) == 0 {
			responses.Error(c, http.StatusBadRequest, "items are required")
			return
		}
		if req.ShippingAddressID == 0 {
			responses.Error(c, http.StatusBadRequest, "shipping_address_id is required")
			return
		}

		// Fail fast: every item must be valid before any write happens.
		for _, item := range req.Items {
			if item.ProductID == "" || item.ProductName == "" {
				responses.Error(c, http.StatusBadRequest, "Invalid item: product_id and product_name are required")
				return
			}
			if !validation.IsValidPrice(item.Price) {
				responses.Error(c, http.StatusBadRequest, "Invalid item price")
				return
			}
			if !validation.IsPositiveQuantity(item.Quantity) {
				responses.Error(c, http.StatusBadRequest, "Invalid item quantity")
				return
			}
		}

		var address models.ShippingAddress
		if err := db.Where("id = ? AND username = ?", req.ShippingAddressID, req.Username).
			First(&address).Error; err != nil {
			responses.Error(c, http.StatusNotFound, "Shipping address not found")
			return
		}

		var orders []models.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			for _, item := range req.Items {
				price, _ := decimal.NewFromString(item.Price)
				order := models.Order{
					Username:       req.Username,
					SellerUsername: item.SellerUsername,
					ProductID:      item.ProductID,
					ProductName:    item.ProductName,
					Price:          price,
					Quantity:       item.Quantity,
					TotalAmount:    price.Mul(decimal.NewFromInt(int64(item.Quantity))),
					Status:         models.OrderStatusPending,
					PaymentMethod:  req.PaymentMethod,
					DeliveryOption: req.DeliveryOption,
					IDURL:          item.IDURL,
				}
				if err := tx.Create(&order).Error; err != nil {
					return err
				}
				orders = append(orders, order)
			}

			for _, item := range req.Items {
				if item.CartItemID == 0 {
					continue
				}
				if err := tx.Where("id = ? AND username = ?", item.CartItemID, req.Username).
					Delete(&models.CartItem{}).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			responses.Error(c, http.StatusInternalServerError, "Failed to place order")
			return
		}

		responses.OK(c, responses.Envelope{"orders": orders})
	}
}
