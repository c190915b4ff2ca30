package addressControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/StinkyJeans/Ecommerce-sub000/middleware"
	"github.com/StinkyJeans/Ecommerce-sub000/models"
	"github.com/StinkyJeans/Ecommerce-sub000/responses"
	"github.com/StinkyJeans/Ecommerce-sub000/validation"
)

type AddressRequest struct {
	Username     string `json:"username"`
	FullName     string `json:"full_name"`
	PhoneNumber  string `json:"phone_number"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	Province     string `json:"province"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	IsDefault    bool   `json:"is_default"`
}

func (req *AddressRequest) sanitize() {
	req.Username = validation.SanitizeString(req.Username, 100)
	req.FullName = validation.SanitizeString(req.FullName, 100)
	req.PhoneNumber = validation.SanitizeString(req.PhoneNumber, 20)
	req.AddressLine1 = validation.SanitizeString(req.AddressLine1, 200)
	req.AddressLine2 = validation.SanitizeString(req.AddressLine2, 200)
	req.City = validation.SanitizeString(req.City, 100)
	req.Province = validation.SanitizeString(req.Province, 100)
	req.PostalCode = validation.SanitizeString(req.PostalCode, 10)
	req.Country = validation.SanitizeString(req.Country, 100)
}

func (req *AddressRequest) validate() string {
	if !validation.ValidateLength(req.FullName, 2, 100) {
		return "Full name must be between 2 and 100 characters"
	}
	if !validation.IsValidPhone(req.PhoneNumber) {
		return "Invalid phone number"
	}
	if !validation.ValidateLength(req.AddressLine1, 3, 200) {
		return "Address line 1 must be between 3 and 200 characters"
	}
	if req.City == "" || req.Province == "" || req.Country == "" {
		return "city, province and country are required"
	}
	if !validation.IsValidPostalCode(req.PostalCode) {
		return "Invalid postal code"
	}
	return ""
}

// GET /user/addresses
func GetAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			responses.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		addresses := make([]models.ShippingAddress, 0)
		if err := db.Where("username = ?", principal.Username).
			Order("is_default DESC, created_at").Find(&addresses).Error; err != nil {
			responses.Error(c, http.StatusInternalServerError, "Failed to fetch addresses")
			return
		}
		responses.OK(c, responses.Envelope{"addresses": addresses})
	}
}

// POST /user/addresses
//
// When is_default is set, clearing the previous default and inserting
// the new row happen in one transaction so no request can observe two
// defaults.
func CreateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			responses.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req AddressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.Error(c, http.StatusBadRequest, "Invalid request payload")
			return
		}
		req.sanitize()
		if req.Username == "" {
			req.Username = principal.Username
		}
		if !principal.Owns(req.Username) {
			responses.Error(c, http.StatusForbidden, "Forbidden: cannot modify another user's addresses")
			return
		}
		if msg := req.validate(); msg != "" {
			responses.Error(c, http.StatusBadRequest, msg)
			return
		}

		address := models.ShippingAddress{
			Username:     req.Username,
			FullName:     req.FullName,
			PhoneNumber:  req.PhoneNumber,
			AddressLine1: req.AddressLine1,
			AddressLine2: req.AddressLine2,
			City:         req.City,
			Province:     req.Province,
			PostalCode:   req.PostalCode,
			Country:      req.Country,
			IsDefault:    req.IsDefault,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if req.IsDefault {
				if err := tx.Model(&models.ShippingAddress{}).
					Where("username = ? AND is_default = ?", req.Username, true).
					Update("is_default", false).Error; err != nil {
					return err
				}
			}
			return tx.Create(&address).Error
		})
		if err != nil {
			responses.Error(c, http.StatusInternalServerError, "Failed to save address")
			return
		}

		responses.Created(c, responses.Envelope{"address": address})
	}
}

// PUT /user/addresses/:id
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			responses.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id := c.Param("id")
		var address models.ShippingAddress
		if err := db.Where("id = ?", id).First(&address).Error; err != nil {
			responses.Error(c, http.StatusNotFound, "Address not found")
			return
		}
		if !principal.Owns(address.Username) {
			responses.Error(c, http.StatusForbidden, "Forbidden: cannot modify another user's addresses")
			return
		}

		var req AddressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.Error(c, http.StatusBadRequest, "Invalid request payload")
			return
		}
		req.sanitize()
		if msg := req.validate(); msg != "" {
			responses.Error(c, http.StatusBadRequest, msg)
			return
		}

		updates := map[string]interface{}{
			"full_name":     req.FullName,
			"phone_number":  req.PhoneNumber,
			"address_line1": req.AddressLine1,
			"address_line2": req.AddressLine2,
			"city":          req.City,
			"province":      req.Province,
			"postal_code":   req.PostalCode,
			"country":       req.Country,
			"is_default":    req.IsDefault,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if req.IsDefault {
				if err := tx.Model(&models.ShippingAddress{}).
					Where("username = ? AND is_default = ? AND id <> ?", address.Username, true, address.ID).
					Update("is_default", false).Error; err != nil {
					return err
				}
			}
			return tx.Model(&address).Updates(updates).Error
		})
		if err != nil {
			responses.Error(c, http.StatusInternalServerError, "Failed to update address")
			return
		}

		responses.OK(c, responses.Envelope{"address": address})
	}
}

// DELETE /user/addresses/:id
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			responses.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id := c.Param("id")
		var address models.ShippingAddress
		if err := db.Where("id = ?", id).First(&address).Error; err != nil {
			responses.Error(c, http.StatusNotFound, "Address not found")
			return
		}
		if !principal.Owns(address.Username) {
			responses.Error(c, http.StatusForbidden, "Forbidden: cannot modify another user's addresses")
			return
		}

		if err := db.Delete(&address).Error; err != nil {
			responses.Error(c, http.StatusInternalServerError, "Failed to delete address")
			return
		}
		responses.OK(c, responses.Envelope{"message": "Address deleted"})
	}
}
