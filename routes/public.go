package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productController "github.com/StinkyJeans/Ecommerce-sub000/controllers/product"
)

// SetupPublicRoutes registers the unauthenticated catalog endpoints.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productController.GetProducts(db))
	r.GET("/products/category/:category", productController.GetProductsByCategory(db))
}
