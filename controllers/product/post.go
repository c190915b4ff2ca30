package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/StinkyJeans/Ecommerce-sub000/middleware"
	"github.com/StinkyJeans/Ecommerce-sub000/models"
	"github.com/StinkyJeans/Ecommerce-sub000/responses"
	"github.com/StinkyJeans/Ecommerce-sub000/validation"
)

type ProductRequest struct {
	SellerUsername string `json:"seller_username"`
	ProductName    string `json:"product_name"`
	Description    string `json:"description"`
	Price          string `json:"price"`
	Category       string `json:"category"`
	IDURL          string `json:"id_url"`
}

func (req *ProductRequest) sanitize() {
	req.SellerUsername = validation.SanitizeString(req.SellerUsername, 100)
	req.ProductName = validation.SanitizeString(req.ProductName, 200)
	req.Description = validation.SanitizeString(req.Description, 1000)
	req.Category = validation.SanitizeString(req.Category, 20)
	req.IDURL = validation.SanitizeString(req.IDURL, 2048)
}

func (req *ProductRequest) validate() string {
	if !validation.ValidateLength(req.ProductName, 2, 200) {
		return "Product name must be between 2 and 200 characters"
	}
	if !validation.ValidateLength(req.Description, 10, 1000) {
		return "Description must be between 10 and 1000 characters"
	}
	if !validation.IsValidPrice(req.Price) {
		return "Invalid price"
	}
	if !models.ValidCategory(req.Category) {
		return "Invalid category"
	}
	if !validation.IsValidImageURL(req.IDURL) {
		return "Invalid image URL"
	}
	return ""
}

// POST /seller/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			responses.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.Error(c, http.StatusBadRequest, "Invalid request payload")
			return
		}
		req.sanitize()

		// Sellers create products under their own name; admins may
		// create on behalf of any seller.
		if req.SellerUsername == "" {
			req.SellerUsername = principal.Username
		}
		if !principal.Owns(req.SellerUsername) {
			responses.Error(c, http.StatusForbidden, "Forbidden: cannot create products for another seller")
			return
		}
		if principal.Role == models.RoleSeller && principal.SellerStatus != models.SellerStatusApproved {
			responses.Error(c, http.StatusForbidden, "Forbidden: seller account is not approved")
			return
		}
		if msg := req.validate(); msg != "" {
			responses.Error(c, http.StatusBadRequest, msg)
			return
		}

		var existing models.Product
		if err := db.Where("seller_username = ? AND product_name = ?",
			req.SellerUsername, req.ProductName).First(&existing).Error; err == nil {
			responses.Error(c, http.StatusConflict, "A product with this name already exists")
			return
		}

		price, _ := decimal.NewFromString(req.Price)
		product := models.Product{
			ProductID:      nextProductID(db),
			SellerUsername: req.SellerUsername,
			ProductName:    req.ProductName,
			Description:    req.Description,
			Price:          price,
			Category:       models.Category(req.Category),
			IDURL:          req.IDURL,
		}
		if err := db.Create(&product).Error; err != nil {
			responses.Error(c, http.StatusConflict, "A product with this name already exists")
			return
		}

		responses.Created(c, responses.Envelope{"productId": product.ProductID})
	}
}
