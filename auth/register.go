package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/StinkyJeans/Ecommerce-sub000/models"
	"github.com/StinkyJeans/Ecommerce-sub000/responses"
	"github.com/StinkyJeans/Ecommerce-sub000/validation"
)

type RegisterRequest struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	Contact     string `json:"contact"`
	IDURL       string `json:"idUrl"`
}

// POST /auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.Error(c, http.StatusBadRequest, "Invalid request payload")
			return
		}

		req.DisplayName = validation.SanitizeString(req.DisplayName, 100)
		req.Email = strings.ToLower(validation.SanitizeString(req.Email, 254))
		req.Contact = validation.SanitizeString(req.Contact, 50)
		req.IDURL = validation.SanitizeString(req.IDURL, 2048)

		if !validation.IsValidEmail(req.Email) {
			responses.Error(c, http.StatusBadRequest, "Invalid email format")
			return
		}
		if !validation.ValidateLength(req.DisplayName, 2, 100) {
			responses.Error(c, http.StatusBadRequest, "Display name must be between 2 and 100 characters")
			return
		}
		if check := validation.ValidatePasswordStrength(req.Password); !check.Valid {
			responses.Error(c, http.StatusBadRequest, strings.Join(check.Errors, "; "))
			return
		}
		if req.Role == "" {
			req.Role = string(models.RoleUser)
		}
		if !models.ValidRole(req.Role) {
			responses.Error(c, http.StatusBadRequest, "Invalid role")
			return
		}
		if req.IDURL != "" && !validation.IsValidImageURL(req.IDURL) {
			responses.Error(c, http.StatusBadRequest, "Invalid image URL")
			return
		}

		// Pre-emptive check gives a clean message; the unique indexes on
		// email and username close the race two concurrent registrations
		// would otherwise win together.
		var existing models.User
		if err := db.Where("email = ? OR username = ?", req.Email, req.DisplayName).
			First(&existing).Error; err == nil {
			responses.Error(c, http.StatusBadRequest, "Email or username already registered")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			responses.Error(c, http.StatusInternalServerError, "An error occurred")
			return
		}

		user := models.User{
			Username:     req.DisplayName,
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         models.Role(req.Role),
			Contact:      req.Contact,
			IDURL:        req.IDURL,
		}
		if user.Role == models.RoleSeller {
			user.SellerStatus = models.SellerStatusPending
		}

		if err := db.Create(&user).Error; err != nil {
			responses.Error(c, http.StatusBadRequest, "Email or username already registered")
			return
		}

		responses.Created(c, responses.Envelope{"message": "Registration successful"})
	}
}
