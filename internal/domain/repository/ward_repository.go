package repository

import (
	"uhc-health-portal/internal/domain/entity"

	"gorm.io/gorm"
)

type WardRepository interface {
	Create(db *gorm.DB, ward *entity.Ward) error
	FindByID(db *gorm.DB, wardID string) (*entity.Ward, error)
	FindAll(db *gorm.DB) ([]entity.Ward, error)
}
