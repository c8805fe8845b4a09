package repository

import (
	"uhc-health-portal/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByDoctor(db *gorm.DB, doctorID string) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
}
