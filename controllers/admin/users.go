package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/StinkyJeans/Ecommerce-sub000/models"
	"github.com/StinkyJeans/Ecommerce-sub000/responses"
)

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		users := make([]models.User, 0)
		if err := db.
			Select("id", "username", "email", "role", "seller_status", "contact", "created_at").
			Order("created_at DESC").
			Find(&users).Error; err != nil {
			responses.Error(c, http.StatusInternalServerError, "Failed to fetch users")
			return
		}
		responses.OK(c, responses.Envelope{"users": users})
	}
}
