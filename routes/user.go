package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/StinkyJeans/Ecommerce-sub000/config"
	addressControllers "github.com/StinkyJeans/Ecommerce-sub000/controllers/address"
	cartControllers "github.com/StinkyJeans/Ecommerce-sub000/controllers/cart"
	checkoutControllers "github.com/StinkyJeans/Ecommerce-sub000/controllers/checkout"
	orderControllers "github.com/StinkyJeans/Ecommerce-sub000/controllers/order"
	"github.com/StinkyJeans/Ecommerce-sub000/middleware"
)

// SetupUserRoutes registers all /user/* endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(db, cfg.Auth.JWTSecret))
	{
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(db))
			cartGroup.POST("", cartControllers.AddCartItem(db))
			cartGroup.PATCH("/quantity", cartControllers.UpdateCartQuantity(db))
			cartGroup.DELETE("/:id", cartControllers.RemoveCartItem(db))
		}

		userGroup.POST("/checkout", checkoutControllers.Checkout(db))
		userGroup.GET("/orders", orderControllers.GetUserOrders(db))

		addressGroup := userGroup.Group("/addresses")
		{
			addressGroup.GET("", addressControllers.GetAddresses(db))
			addressGroup.POST("", addressControllers.CreateAddress(db))
			addressGroup.PUT("/:id", addressControllers.UpdateAddress(db))
			addressGroup.DELETE("/:id", addressControllers.DeleteAddress(db))
		}
	}
}
