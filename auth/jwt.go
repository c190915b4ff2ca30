package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/StinkyJeans/Ecommerce-sub000/models"
)

// IssueToken signs an HS256 token carrying the identity claims the
// middleware resolves back into a principal.
func IssueToken(user *models.User, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"email":    user.Email,
		"role":     string(user.Role),
		"exp":      time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
