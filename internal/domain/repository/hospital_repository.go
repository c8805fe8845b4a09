package repository

import (
	"uhc-health-portal/internal/domain/entity"

	"gorm.io/gorm"
)

type HospitalRepository interface {
	Create(db *gorm.DB, hospital *entity.Hospital) error
	FindAll(db *gorm.DB) ([]entity.Hospital, error)
}
