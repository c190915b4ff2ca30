package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/StinkyJeans/Ecommerce-sub000/config"
)

// SetupRoutes wires up the public, user, seller and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Public auth + catalog routes (no middleware)
	SetupAuthRoutes(r, db, cfg)
	SetupPublicRoutes(r, db)

	// JWT-protected groups
	SetupUserRoutes(r, db, cfg)
	SetupSellerRoutes(r, db, cfg)
	SetupAdminRoutes(r, db, cfg)
}
