package model

import (
	"gorm.io/gorm"
)

type AppointmentType string

const (
	AppointmentTypePhone    AppointmentType = "phone"
	AppointmentTypeInPerson AppointmentType = "in_person"
	AppointmentTypeZoom     AppointmentType = "zoom"
)

type Appointment struct {
	gorm.Model
	ClientID uint            `json:"client_id" gorm:"index"`
	Date     string          `json:"date" gorm:"not null"` // YYYY-MM-DD
	Time     string          `json:"time" gorm:"not null"` // HH:MM
	Type     AppointmentType `json:"type" gorm:"not null"`
	Location string          `json:"location"`
	Notes    string          `json:"notes" gorm:"type:text"`

	Client Client `json:"client" gorm:"foreignKey:ClientID"`
}
