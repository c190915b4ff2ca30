package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/StinkyJeans/Ecommerce-sub000/middleware"
	"github.com/StinkyJeans/Ecommerce-sub000/models"
	"github.com/StinkyJeans/Ecommerce-sub000/responses"
	"github.com/StinkyJeans/Ecommerce-sub000/validation"
)

type AddCartItemRequest struct {
	Username    string `json:"username"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	IDURL       string `json:"id_url"`
	Quantity    int    `json:"quantity"`
}

// POST /user/cart
//
// Adding a product already in the cart merges into the existing row.
// The insert-or-increment runs as a single upsert against the unique
// (username, product_id) index, so concurrent identical adds cannot
// produce duplicate rows.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			responses.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req AddCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.Error(c, http.StatusBadRequest, "Invalid request payload")
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		req.Username = validation.SanitizeString(req.Username, 100)
		req.ProductID = validation.SanitizeString(req.ProductID, 100)
		req.ProductName = validation.SanitizeString(req.ProductName, 200)
		req.Description = validation.SanitizeString(req.Description, 1000)
		req.IDURL = validation.SanitizeString(req.IDURL, 2048)

		if !principal.Owns(req.Username) {
			responses.Error(c, http.StatusForbidden, "Forbidden: cannot modify another user's cart")
			return
		}
		if req.Username == "" || req.ProductID == "" || req.ProductName == "" {
			responses.Error(c, http.StatusBadRequest, "username, product_id and product_name are required")
			return
		}
		if !validation.IsValidPrice(req.Price) {
			responses.Error(c, http.StatusBadRequest, "Invalid price")
			return
		}
		if !validation.IsPositiveQuantity(req.Quantity) {
			responses.Error(c, http.StatusBadRequest, "Invalid quantity")
			return
		}
		if req.IDURL != "" && !validation.IsValidImageURL(req.IDURL) {
			responses.Error(c, http.StatusBadRequest, "Invalid image URL")
			return
		}

		price, _ := decimal.NewFromString(req.Price)

		// Pre-read only decides the response flavor; correctness comes
		// from the upsert below.
		var existing models.CartItem
		merged := db.Where("username = ? AND product_id = ?", req.Username, req.ProductID).
			First(&existing).Error == nil

		item := models.CartItem{
			Username:    req.Username,
			ProductID:   req.ProductID,
			ProductName: req.ProductName,
			Description: req.Description,
			Price:       price,
			IDURL:       req.IDURL,
			Quantity:    req.Quantity,
			AddedAt:     time.Now(),
		}
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "username"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("quantity + ?", req.Quantity),
				"updated_at": time.Now(),
			}),
		}).Create(&item).Error
		if err != nil {
			responses.Error(c, http.StatusInternalServerError, "Failed to add item to cart")
			return
		}

		var current models.CartItem
		if err := db.Where("username = ? AND product_id = ?", req.Username, req.ProductID).
			First(&current).Error; err != nil {
			responses.Error(c, http.StatusInternalServerError, "Failed to fetch cart item")
			return
		}

		if merged {
			responses.OK(c, responses.Envelope{"updated": true, "quantity": current.Quantity})
			return
		}
		responses.Created(c, responses.Envelope{"cartItem": current})
	}
}

// GET /user/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			responses.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		items := make([]models.CartItem, 0)
		if err := db.Where("username = ?", principal.Username).
			Order("added_at").Find(&items).Error; err != nil {
			responses.Error(c, http.StatusInternalServerError, "Failed to fetch cart")
			return
		}
		responses.OK(c, responses.Envelope{"cartItems": items})
	}
}

// DELETE /user/cart/:id?username=...
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			responses.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id := c.Param("id")
		username := c.Query("username")
		if id == "" || username == "" {
			responses.Error(c, http.StatusBadRequest, "id and username are required")
			return
		}
		if !principal.Owns(username) {
			responses.Error(c, http.StatusForbidden, "Forbidden: cannot modify another user's cart")
			return
		}

		result := db.Where("id = ? AND username = ?", id, username).Delete(&models.CartItem{})
		if result.Error != nil {
			responses.Error(c, http.StatusInternalServerError, "Failed to delete cart item")
			return
		}
		if result.RowsAffected == 0 {
			responses.Error(c, http.StatusNotFound, "Cart item not found")
			return
		}
		responses.OK(c, responses.Envelope{"message": "Cart item deleted"})
	}
}

// PATCH /user/cart/quantity?id=...&action=increase|decrease&username=...
//
// Decreasing a quantity of 1 removes the row entirely; no zero or
// negative quantity is reachable.
func UpdateCartQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			responses.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id := c.Query("id")
		action := c.Query("action")
		username := c.Query("username")
		if id == "" || username == "" {
			responses.Error(c, http.StatusBadRequest, "id and username are required")
			return
		}
		if action != "increase" && action != "decrease" {
			responses.Error(c, http.StatusBadRequest, "action must be increase or decrease")
			return
		}
		if !principal.Owns(username) {
			responses.Error(c, http.StatusForbidden, "Forbidden: cannot modify another user's cart")
			return
		}

		var item models.CartItem
		if err := db.Where("id = ? AND username = ?", id, username).First(&item).Error; err != nil {
			responses.Error(c, http.StatusNotFound, "Cart item not found")
			return
		}

		if action == "increase" {
			item.Quantity++
			if err := db.Save(&item).Error; err != nil {
				responses.Error(c, http.StatusInternalServerError, "Failed to update cart item")
				return
			}
			responses.OK(c, responses.Envelope{"cartItem": item})
			return
		}

		if item.Quantity > 1 {
			item.Quantity--
			if err := db.Save(&item).Error; err != nil {
				responses.Error(c, http.StatusInternalServerError, "Failed to update cart item")
				return
			}
			responses.OK(c, responses.Envelope{"cartItem": item})
			return
		}

		if err := db.Delete(&item).Error; err != nil {
			responses.Error(c, http.StatusInternalServerError, "Failed to remove cart item")
			return
		}
		responses.OK(c, responses.Envelope{"removed": true})
	}
}
