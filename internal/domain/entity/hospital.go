package entity

import (
	"github.com/google/uuid"
)

const (
	HospitalTypeGovernment = "government"
	HospitalTypePrivate    = "private"
	HospitalTypeNGO        = "ngo"
)

// Hospital is static reference data for the hospital network directory.
type Hospital struct {
	HospitalID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"hospital_id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Address         string    `gorm:"type:text;not null" json:"address"`
	City            string    `gorm:"type:varchar(100);not null" json:"city"`
	Type            string    `gorm:"type:varchar(20);not null" json:"type"`
	Rating          *int      `json:"rating"`
	Specializations []string  `gorm:"serializer:json;type:text" json:"specializations"`
	Phone           *string   `gorm:"type:varchar(20)" json:"phone"`
	Email           *string   `gorm:"type:varchar(255)" json:"email"`
}

func (Hospital) TableName() string {
	return "hospitals"
}
