package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/StinkyJeans/Ecommerce-sub000/models"
	"github.com/StinkyJeans/Ecommerce-sub000/responses"
)

const principalKey = "principal"

// Principal is the resolved identity a handler consumes: token claims
// joined with the application user row that carries role and seller
// status. The two-step resolution stays hidden behind this type.
type Principal struct {
	Username     string
	Email        string
	Role         models.Role
	SellerStatus models.SellerStatus
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// Owns reports whether the principal may act on a resource owned by
// username. Admins bypass the ownership check.
func (p Principal) Owns(username string) bool {
	return p.Username == username || p.IsAdmin()
}

// SetPrincipal stores p on the request context the way ValidateToken
// does. Handler tests use it to skip token resolution.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

// GetPrincipal returns the principal stored by ValidateToken.
func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// ValidateToken authenticates the request. It extracts the bearer
// token, verifies the HS256 signature, then loads the application user
// row by the token's email claim. Every resolution failure is a
// terminal 401 with a generic message.
func ValidateToken(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Error(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			responses.Error(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			responses.Error(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			responses.Error(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		email, _ := claims["email"].(string)
		if email == "" {
			responses.Error(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		// Role and seller status live on the application row, not in
		// the token, so a revoked or demoted user is caught here.
		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			responses.Error(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		c.Set(principalKey, Principal{
			Username:     user.Username,
			Email:        user.Email,
			Role:         user.Role,
			SellerStatus: user.SellerStatus,
		})
		c.Next()
	}
}
