package model

import (
	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UnitStatus sale state of a single unit
type UnitStatus string

const (
	UnitStatusAvailable UnitStatus = "available"
	UnitStatusReserved  UnitStatus = "reserved"
	UnitStatusSold      UnitStatus = "sold"
)

type Project struct {
	gorm.Model
	Name             string `json:"project_name" gorm:"not null"`
	City             string `json:"city" gorm:"not null"`
	Slug             string `json:"slug" gorm:"uniqueIndex;not null"`
	ShortDescription string `json:"short_description" gorm:"type:text"`
	LongDescription  string `json:"long_description" gorm:"type:text"`

	// Ordered list of image URLs, stored as a JSON array.
	Images datatypes.JSON `json:"images"`

	MapEmbedURL string `json:"map_embed_url" gorm:"type:text"`
	BrochureURL string `json:"brochure_url"`

	Units []Unit `json:"units" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

type Unit struct {
	gorm.Model
	ProjectID  uint       `json:"project_id" gorm:"index"`
	UnitNumber string     `json:"unit_number" gorm:"not null"`
	Floor      int        `json:"floor" gorm:"not null"`
	Surface    float64    `json:"surface" gorm:"not null"`
	Status     UnitStatus `json:"status" gorm:"default:'available'"`
	Price      *float64   `json:"price,omitempty"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID"`
}

// BeforeCreate fills the slug from the project name when none was given.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.Slug == "" {
		s := slug.Make(p.Name)

		var count int64
		tx.Model(&Project{}).Where("slug = ?", s).Count(&count)
		if count > 0 {
			s = s + "-" + slug.Make(p.City)
		}

		p.Slug = s
	}
	return nil
}
