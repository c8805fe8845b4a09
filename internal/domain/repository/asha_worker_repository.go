package repository

import (
	"uhc-health-portal/internal/domain/entity"

	"gorm.io/gorm"
)

type AshaWorkerRepository interface {
	Create(db *gorm.DB, worker *entity.AshaWorker) error
	FindByID(db *gorm.DB, ashaID string) (*entity.AshaWorker, error)
	FindByEmail(db *gorm.DB, email string) (*entity.AshaWorker, error)
	FindByWard(db *gorm.DB, wardID string) ([]entity.AshaWorker, error)
	FindAll(db *gorm.DB) ([]entity.AshaWorker, error)
	Update(db *gorm.DB, worker *entity.AshaWorker) error
	Delete(db *gorm.DB, ashaID string) (int64, error)
}
