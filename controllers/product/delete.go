package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/StinkyJeans/Ecommerce-sub000/middleware"
	"github.com/StinkyJeans/Ecommerce-sub000/models"
	"github.com/StinkyJeans/Ecommerce-sub000/responses"
)

// DELETE /seller/products/:productId
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
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
			responses.Error(c, http.StatusForbidden, "Forbidden: cannot delete another seller's product")
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			responses.Error(c, http.StatusInternalServerError, "Failed to delete product")
			return
		}
		responses.OK(c, responses.Envelope{"message": "Product deleted"})
	}
}
