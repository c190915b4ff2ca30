package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/StinkyJeans/Ecommerce-sub000/models"
	"github.com/StinkyJeans/Ecommerce-sub000/responses"
)

// ListPendingSellers returns all sellers awaiting approval.
func ListPendingSellers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pending := make([]models.User, 0)
		if err := db.
			Select("id", "username", "email", "contact", "id_url", "created_at").
			Where("role = ? AND seller_status = ?", models.RoleSeller, models.SellerStatusPending).
			Find(&pending).Error; err != nil {
			responses.Error(c, http.StatusInternalServerError, "Failed to fetch pending sellers")
			return
		}
		responses.OK(c, responses.Envelope{"sellers": pending})
	}
}

type sellerDecisionRequest struct {
	Email string `json:"email"`
}

// ApproveSeller moves a pending seller to approved. This endpoint and
// RejectSeller are the only mutation path for seller_status.
func ApproveSeller(db *gorm.DB) gin.HandlerFunc {
	return decideSeller(db, models.SellerStatusApproved, "Seller approved")
}

// RejectSeller marks a pending seller rejected. The row is kept so the
// seller sees the rejection at login.
func RejectSeller(db *gorm.DB) gin.HandlerFunc {
	return decideSeller(db, models.SellerStatusRejected, "Seller rejected")
}

func decideSeller(db *gorm.DB, status models.SellerStatus, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sellerDecisionRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
			responses.Error(c, http.StatusBadRequest, "email is required")
			return
		}

		var seller models.User
		if err := db.Where("email = ? AND role = ?", req.Email, models.RoleSeller).
			First(&seller).Error; err != nil {
			responses.Error(c, http.StatusNotFound, "Seller not found")
			return
		}

		if err := db.Model(&seller).Update("seller_status", status).Error; err != nil {
			responses.Error(c, http.StatusInternalServerError, "Failed to update seller status")
			return
		}
		responses.OK(c, responses.Envelope{"message": message})
	}
}
