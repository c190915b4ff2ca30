package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/StinkyJeans/Ecommerce-sub000/config"
	orderControllers "github.com/StinkyJeans/Ecommerce-sub000/controllers/order"
	productController "github.com/StinkyJeans/Ecommerce-sub000/controllers/product"
	"github.com/StinkyJeans/Ecommerce-sub000/middleware"
	"github.com/StinkyJeans/Ecommerce-sub000/models"
)

// SetupSellerRoutes registers all /seller/* endpoints. Requires the
// seller or admin role.
func SetupSellerRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	sellerGroup := r.Group("/seller")
	sellerGroup.Use(
		middleware.ValidateToken(db, cfg.Auth.JWTSecret),
		middleware.RequireRole(models.RoleSeller, models.RoleAdmin),
	)
	{
		productGroup := sellerGroup.Group("/products")
		{
			productGroup.GET("", productController.GetSellerProducts(db))
			productGroup.POST("", productController.CreateProduct(db))
			productGroup.PUT("/:productId", productController.UpdateProduct(db))
			productGroup.DELETE("/:productId", productController.DeleteProduct(db))
		}

		sellerGroup.GET("/orders", orderControllers.GetSellerOrders(db))
		sellerGroup.PUT("/orders/:id/status", orderControllers.UpdateOrderStatus(db))
	}
}
