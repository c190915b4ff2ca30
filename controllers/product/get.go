package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/StinkyJeans/Ecommerce-sub000/middleware"
	"github.com/StinkyJeans/Ecommerce-sub000/models"
	"github.com/StinkyJeans/Ecommerce-sub000/responses"
)

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := make([]models.Product, 0)
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			responses.Error(c, http.StatusInternalServerError, "Failed to fetch products")
			return
		}
		responses.OK(c, responses.Envelope{"products": products})
	}
}

// GET /products/category/:category
func GetProductsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Param("category")
		if !models.ValidCategory(category) {
			responses.Error(c, http.StatusBadRequest, "Invalid category")
			return
		}

		products := make([]models.Product, 0)
		if err := db.Where("category = ?", category).
			Order("created_at DESC").Find(&products).Error; err != nil {
			responses.Error(c, http.StatusInternalServerError, "Failed to fetch products")
			return
		}
		responses.OK(c, responses.Envelope{"products": products})
	}
}

// GET /seller/products
func GetSellerProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			responses.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		seller := principal.Username
		if principal.IsAdmin() {
			if q := c.Query("seller"); q != "" {
				seller = q
			}
		}

		products := make([]models.Product, 0)
		if err := db.Where("seller_username = ?", seller).
			Order("created_at DESC").Find(&products).Error; err != nil {
			responses.Error(c, http.StatusInternalServerError, "Failed to fetch products")
			return
		}
		responses.OK(c, responses.Envelope{"products": products})
	}
}
