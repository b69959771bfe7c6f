package model

import (
	"gorm.io/gorm"
)

// Client is a lead captured via the public contact form.
type Client struct {
	gorm.Model
	FullName string `json:"full_name" gorm:"not null"`
	Email    string `json:"email" gorm:"not null"`
	Phone    string `json:"phone" gorm:"not null"`
	Language string `json:"language" gorm:"not null"` // en, fr, he, ru

	// Slug of the project the visitor asked about. Weak reference, the
	// project may have been renamed or removed since.
	ProjectSelected string `json:"project_selected"`

	Message string `json:"message" gorm:"type:text"`
	Status  string `json:"status" gorm:"default:'new'"` // new, contacted, in_progress, sold, not_interested
}
