package repository

import (
	"uhc-health-portal/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberRepository interface {
	Create(db *gorm.DB, member *entity.Member) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Member, error)
	FindByHousehold(db *gorm.DB, householdID string) ([]entity.Member, error)
	// FindByWard resolves the ward's households first, then selects members
	// whose household_id is in that set.
	FindByWard(db *gorm.DB, wardID string) ([]entity.Member, error)
	CountByHousehold(db *gorm.DB, householdID string) (int64, error)
}
