package models

import (
	"strings"
	"time"

	"renthub/tools"
)

/************************************************
/**** MARK: USER ROLES ****/
/************************************************/
const ROLE_ADMIN = "admin"
const ROLE_OWNER = "owner"
const ROLE_TENANT = "tenant"

// User representa uma conta no marketplace (inquilino, proprietário ou admin).
type User struct {
	ID           int64     `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name         string    `gorm:"not null" json:"name" form:"name"`
	Email        string    `gorm:"not null;unique_index" json:"email" form:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	Phone        string    `gorm:"default:''" json:"phone" form:"phone"`
	Role         string    `gorm:"not null;default:'tenant';index" json:"role" form:"role"`
	IsAdmin      bool      `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EffectiveRole resolves the role, honouring the legacy is_admin flag for
// rows written before the role column existed.
func (user User) EffectiveRole() string {
	if user.IsAdmin {
		return ROLE_ADMIN
	}
	if user.Role == "" {
		return ROLE_TENANT
	}
	return user.Role
}

func (user User) MissingFields() string {
	if strings.TrimSpace(user.Name) == "" {
		return "name"
	} else if strings.TrimSpace(user.Email) == "" {
		return "email"
	}
	return ""
}

func IsValidRole(role string) bool {
	switch role {
	case ROLE_ADMIN, ROLE_OWNER, ROLE_TENANT:
		return true
	}
	return false
}

// NormalizeEmail is the canonical form used for lookups and uniqueness.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail checks the normalized address shape.
func ValidEmail(email string) bool {
	return tools.ValidateEmail(email)
}
