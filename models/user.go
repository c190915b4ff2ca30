package models

import "time"

type Role string

const (
	RoleUser   Role = "user"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

type SellerStatus string

const (
	SellerStatusPending  SellerStatus = "pending"
	SellerStatusApproved SellerStatus = "approved"
	SellerStatusRejected SellerStatus = "rejected"
)

type User struct {
	ID                uint         `gorm:"primaryKey" json:"id"`
	Username          string       `gorm:"uniqueIndex;not null" json:"username"`
	Email             string       `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string       `gorm:"not null" json:"-"`
	Role              Role         `gorm:"type:VARCHAR(10);default:'user'" json:"role"`
	SellerStatus      SellerStatus `gorm:"type:VARCHAR(10)" json:"seller_status,omitempty"` // only meaningful for sellers
	Contact           string       `json:"contact,omitempty"`
	IDURL             string       `json:"id_url,omitempty"` // verification document
	PasswordChangedAt *time.Time   `json:"password_changed_at,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// ValidRole reports whether s is a role a client may register as.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleUser, RoleSeller:
		return true
	}
	return false
}
