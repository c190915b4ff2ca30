package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/StinkyJeans/Ecommerce-sub000/config"
	"github.com/StinkyJeans/Ecommerce-sub000/models"
	"github.com/StinkyJeans/Ecommerce-sub000/responses"
	"github.com/StinkyJeans/Ecommerce-sub000/validation"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /auth/login
func Login(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.Error(c, http.StatusBadRequest, "Invalid request payload")
			return
		}

		email := strings.ToLower(validation.SanitizeString(req.Email, 254))
		if !validation.IsValidEmail(email) {
			responses.Error(c, http.StatusBadRequest, "Invalid email format")
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			responses.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		// Pending and rejected sellers learn their state before any
		// credential check. No secrets are involved at this stage.
		if user.Role == models.RoleSeller {
			switch user.SellerStatus {
			case models.SellerStatusPending:
				responses.Error(c, http.StatusForbidden,
					"Your seller account is awaiting approval",
					responses.Envelope{"sellerStatus": "pending"})
				return
			case models.SellerStatusRejected:
				responses.Error(c, http.StatusForbidden,
					"Your seller application was rejected",
					responses.Envelope{"sellerStatus": "rejected"})
				return
			}
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			extra := responses.Envelope{}
			if user.PasswordChangedAt != nil {
				extra["passwordChangedAt"] = user.PasswordChangedAt
			}
			responses.Error(c, http.StatusUnauthorized, "Invalid email or password", extra)
			return
		}

		token, err := IssueToken(&user, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		if err != nil {
			responses.Error(c, http.StatusInternalServerError, "An error occurred")
			return
		}

		responses.OK(c, responses.Envelope{
			"role":  user.Role,
			"user":  user,
			"token": token,
		})
	}
}
