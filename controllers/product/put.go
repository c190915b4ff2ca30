package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/StinkyJeans/Ecommerce-sub000/middleware"
	"github.com/StinkyJeans/Ecommerce-sub000/models"
	"github.com/StinkyJeans/Ecommerce-sub000/responses"
)

// PUT /seller/products/:productId
//
// Sellers may edit only their own products; admins bypass ownership.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			responses.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		productID := c.Param("productId")
		if productID == "" {
			responses.Error(c, http.StatusBadRequest, "productId is required")
			return
		}

		var product models.Product
		if err := db.Where("product_id = ?", productID).First(&product).Error; err != nil {
			responses.Error(c, http.StatusNotFound, "Product not found")
			return
		}
		if !principal.Owns(product.SellerUsername) {
			responses.Error(c, http.StatusForbidden, "Forbidden: cannot modify another seller's product")
			return
		}

		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.Error(c, http.StatusBadRequest, "Invalid request payload")
			return
		}
		req.sanitize()
		if req.SellerUsername == "" {
			req.SellerUsername = product.SellerUsername
		}
		if msg := req.validate(); msg != "" {
			responses.Error(c, http.StatusBadRequest, msg)
			return
		}

		price, _ := decimal.NewFromString(req.Price)
		updates := map[string]interface{}{
			"product_name": req.ProductName,
			"description":  req.Description,
			"price":        price,
			"category":     req.Category,
			"id_url":       req.IDURL,
		}
		if err := db.Model(&product).Updates(updates).Error; err != nil {
			responses.Error(c, http.StatusConflict, "A product with this name already exists")
			return
		}

		var updated models.Product
		if err := db.Where("product_id = ?", productID).First(&updated).Error; err != nil {
			responses.Error(c, http.StatusInternalServerError, "Failed to fetch product")
			return
		}
		responses.OK(c, responses.Envelope{"product": updated})
	}
}
