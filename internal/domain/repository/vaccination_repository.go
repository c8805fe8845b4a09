package repository

import (
	"uhc-health-portal/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VaccinationRepository interface {
	Create(db *gorm.DB, vaccination *entity.Vaccination) error
	FindByMember(db *gorm.DB, memberID uuid.UUID) ([]entity.Vaccination, error)
}
