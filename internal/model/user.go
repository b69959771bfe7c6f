package model

import (
	"strings"

	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleCollaborator Role = "collaborator"
	RoleReadOnly     Role = "read_only"
)

// User is a CRM operator account.
type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	FullName string `json:"full_name" gorm:"not null"`
	Role     Role   `json:"role" gorm:"default:'collaborator'"`

	PhoneNumber string `json:"phone_number"`
	Title       string `json:"title"`
}

// Initials two-letter monogram shown in the CRM header.
func (u *User) Initials() string {
	parts := strings.Fields(u.FullName)
	switch len(parts) {
	case 0:
		if u.Email == "" {
			return "?"
		}
		return strings.ToUpper(u.Email[:1])
	case 1:
		return strings.ToUpper(parts[0][:1])
	default:
		return strings.ToUpper(parts[0][:1] + parts[len(parts)-1][:1])
	}
}

func (u *User) GetPublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":           u.ID,
		"email":        u.Email,
		"full_name":    u.FullName,
		"initials":     u.Initials(),
		"role":         u.Role,
		"phone_number": u.PhoneNumber,
		"title":        u.Title,
	}
}
