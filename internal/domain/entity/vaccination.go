package entity

import (
	"github.com/google/uuid"
)

// Vaccination is an append-only record of an administered vaccine.
type Vaccination struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MemberID        uuid.UUID `gorm:"type:uuid;not null;index" json:"member_id"`
	VaccineName     string    `gorm:"type:varchar(255);not null" json:"vaccine_name"`
	VaccinationDate string    `gorm:"type:varchar(10);not null" json:"vaccination_date"`
}

func (Vaccination) TableName() string {
	return "vaccinations"
}
