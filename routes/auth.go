package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/StinkyJeans/Ecommerce-sub000/auth"
	"github.com/StinkyJeans/Ecommerce-sub000/config"
	"github.com/StinkyJeans/Ecommerce-sub000/middleware"
)

// SetupAuthRoutes registers all /auth/* endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db))
		authGroup.POST("/login", auth.Login(db, cfg))

		authGroup.POST("/password-changed",
			middleware.ValidateToken(db, cfg.Auth.JWTSecret),
			auth.MarkPasswordChanged(db))
	}
}
