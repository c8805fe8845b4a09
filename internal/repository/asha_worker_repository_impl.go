package repository

import (
	"errors"

	"uhc-health-portal/internal/domain/entity"
	domainRepo "uhc-health-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type ashaWorkerRepository struct{}

func NewAshaWorkerRepository() domainRepo.AshaWorkerRepository {
	return &ashaWorkerRepository{}
}

func (r *ashaWorkerRepository) Create(db *gorm.DB, worker *entity.AshaWorker) error {
	return db.Create(worker).Error
}

func (r *ashaWorkerRepository) FindByID(db *gorm.DB, ashaID string) (*entity.AshaWorker, error) {
	var worker entity.AshaWorker
	err := db.Where("asha_id = ?", ashaID).First(&worker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &worker, nil
}

func (r *ashaWorkerRepository) FindByEmail(db *gorm.DB, email string) (*entity.AshaWorker, error) {
	var worker entity.AshaWorker
	err := db.Where("email = ?", email).First(&worker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &worker, nil
}

func (r *ashaWorkerRepository) FindByWard(db *gorm.DB, wardID string) ([]entity.AshaWorker, error) {
	var workers []entity.AshaWorker
	err := db.Where("ward_id = ?", wardID).Order("asha_id ASC").Find(&workers).Error
	if err != nil {
		return nil, err
	}
	return workers, nil
}

func (r *ashaWorkerRepository) FindAll(db *gorm.DB) ([]entity.AshaWorker, error) {
	var workers []entity.AshaWorker
	err := db.Order("asha_id ASC").Find(&workers).Error
	if err != nil {
		return nil, err
	}
	return workers, nil
}

func (r *ashaWorkerRepository) Update(db *gorm.DB, worker *entity.AshaWorker) error {
	// Save alone skips nil pointer fields on update; suspension fields must be
	// clearable back to NULL on reactivate.
	return db.Model(worker).
		Select("ward_id", "name", "phone", "email", "status", "suspension_reason", "suspended_by", "suspended_at").
		Updates(worker).Error
}

func (r *ashaWorkerRepository) Delete(db *gorm.DB, ashaID string) (int64, error) {
	result := db.Where("asha_id = ?", ashaID).Delete(&entity.AshaWorker{})
	return result.RowsAffected, result.Error
}
