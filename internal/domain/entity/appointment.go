package entity

import (
	"github.com/google/uuid"
)

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// Appointment is a doctor-created consultation record; status transitions are
// doctor-driven.
type Appointment struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DoctorID        string    `gorm:"type:varchar(64);not null;index" json:"doctor_id"`
	PatientID       string    `gorm:"type:varchar(64);not null" json:"patient_id"`
	AppointmentDate string    `gorm:"type:varchar(10);not null" json:"appointment_date"`
	AppointmentTime string    `gorm:"type:varchar(20);not null" json:"appointment_time"`
	Reason          string    `gorm:"type:text" json:"reason"`
	Notes           string    `gorm:"type:text" json:"notes"`
	Status          string    `gorm:"type:varchar(20);not null;default:scheduled" json:"status"`
}

func (Appointment) TableName() string {
	return "appointments"
}
