package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/StinkyJeans/Ecommerce-sub000/config"
	adminController "github.com/StinkyJeans/Ecommerce-sub000/controllers/admin"
	"github.com/StinkyJeans/Ecommerce-sub000/middleware"
	"github.com/StinkyJeans/Ecommerce-sub000/models"
)

// SetupAdminRoutes registers all /admin/* endpoints. Requires the admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(
		middleware.ValidateToken(db, cfg.Auth.JWTSecret),
		middleware.RequireRole(models.RoleAdmin),
	)
	{
		adminGroup.GET("/statistics", adminController.GetStatistics(db))
		adminGroup.GET("/users", adminController.GetAllUsers(db))

		sellerMgmt := adminGroup.Group("/sellers")
		{
			sellerMgmt.GET("/pending", adminController.ListPendingSellers(db))
			sellerMgmt.POST("/approve", adminController.ApproveSeller(db))
			sellerMgmt.POST("/reject", adminController.RejectSeller(db))
		}
	}
}
