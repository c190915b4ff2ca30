package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/StinkyJeans/Ecommerce-sub000/middleware"
	"github.com/StinkyJeans/Ecommerce-sub000/models"
	"github.com/StinkyJeans/Ecommerce-sub000/responses"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// GET /user/orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			responses.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		orders := make([]models.Order, 0)
		if err := db.Where("username = ?", principal.Username).
			Order("created_at DESC").Find(&orders).Error; err != nil {
			responses.Error(c, http.StatusInternalServerError, "Failed to fetch orders")
			return
		}
		responses.OK(c, responses.Envelope{"orders": orders})
	}
}

// GET /seller/orders
func GetSellerOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			responses.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		orders := make([]models.Order, 0)
		if err := db.Where("seller_username = ?", principal.Username).
			Order("created_at DESC").Find(&orders).Error; err != nil {
			responses.Error(c, http.StatusInternalServerError, "Failed to fetch orders")
			return
		}
		responses.OK(c, responses.Envelope{"orders": orders})
	}
}

// PUT /seller/orders/:id/status
//
// Status moves follow the transition table: pending→confirmed→
// ready_to_ship→shipped→delivered, with cancellation only from pending.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			responses.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.Error(c, http.StatusBadRequest, "Invalid request payload")
			return
		}
		next, valid := models.ParseOrderStatus(req.Status)
		if !valid {
			responses.Error(c, http.StatusBadRequest, "Invalid order status")
			return
		}

		var order models.Order
		if err := db.Where("id = ?", c.Param("id")).First(&order).Error; err != nil {
			responses.Error(c, http.StatusNotFound, "Order not found")
			return
		}
		if !principal.Owns(order.SellerUsername) {
			responses.Error(c, http.StatusForbidden, "Forbidden: cannot modify another seller's order")
			return
		}
		if !order.Status.CanTransition(next) {
			responses.Error(c, http.StatusBadRequest,
				"Invalid status transition from "+string(order.Status)+" to "+string(next))
			return
		}

		if err := db.Model(&order).Update("status", next).Error; err != nil {
			responses.Error(c, http.StatusInternalServerError, "Failed to update order status")
			return
		}
		responses.OK(c, responses.Envelope{"order": order})
	}
}
