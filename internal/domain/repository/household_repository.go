package repository

import (
	"uhc-health-portal/internal/domain/entity"

	"gorm.io/gorm"
)

type HouseholdRepository interface {
	Create(db *gorm.DB, household *entity.Household) error
	FindByID(db *gorm.DB, householdID string) (*entity.Household, error)
	FindByWard(db *gorm.DB, wardID string) ([]entity.Household, error)
	FindAll(db *gorm.DB) ([]entity.Household, error)
	Update(db *gorm.DB, household *entity.Household) error
	// SearchByFamilyHead performs a substring match against family_head only.
	SearchByFamilyHead(db *gorm.DB, query string) ([]entity.Household, error)
}

// HouseholdCounterRepository allocates member-ID sequence numbers atomically
// per household.
type HouseholdCounterRepository interface {
	Next(db *gorm.DB, householdID string) (int, error)
}
