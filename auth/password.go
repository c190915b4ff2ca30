package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/StinkyJeans/Ecommerce-sub000/middleware"
	"github.com/StinkyJeans/Ecommerce-sub000/models"
	"github.com/StinkyJeans/Ecommerce-sub000/responses"
)

// POST /auth/password-changed
//
// Stamps password_changed_at for the authenticated user. The timestamp
// is informational; login surfaces it as a hint on credential failures.
func MarkPasswordChanged(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			responses.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		now := time.Now()
		result := db.Model(&models.User{}).
			Where("email = ?", principal.Email).
			Update("password_changed_at", now)
		if result.Error != nil {
			responses.Error(c, http.StatusInternalServerError, "An error occurred")
			return
		}
		if result.RowsAffected == 0 {
			responses.Error(c, http.StatusNotFound, "User not found")
			return
		}

		responses.OK(c, responses.Envelope{"passwordChangedAt": now})
	}
}
