package repository

import (
	"errors"

	"uhc-health-portal/internal/domain/entity"
	domainRepo "uhc-health-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type wardRepository struct{}

func NewWardRepository() domainRepo.WardRepository {
	return &wardRepository{}
}

func (r *wardRepository) Create(db *gorm.DB, ward *entity.Ward) error {
	return db.Create(ward).Error
}

func (r *wardRepository) FindByID(db *gorm.DB, wardID string) (*entity.Ward, error) {
	var ward entity.Ward
	err := db.Where("ward_id = ?", wardID).First(&ward).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ward, nil
}

func (r *wardRepository) FindAll(db *gorm.DB) ([]entity.Ward, error) {
	var wards []entity.Ward
	err := db.Order("ward_id ASC").Find(&wards).Error
	if err != nil {
		return nil, err
	}
	return wards, nil
}
