package repository

import (
	"errors"

	"uhc-health-portal/internal/domain/entity"
	domainRepo "uhc-health-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type householdRepository struct{}

func NewHouseholdRepository() domainRepo.HouseholdRepository {
	return &householdRepository{}
}

func (r *householdRepository) Create(db *gorm.DB, household *entity.Household) error {
	return db.Create(household).Error
}

func (r *householdRepository) FindByID(db *gorm.DB, householdID string) (*entity.Household, error) {
	var household entity.Household
	err := db.Where("household_id = ?", householdID).First(&household).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &household, nil
}

func (r *householdRepository) FindByWard(db *gorm.DB, wardID string) ([]entity.Household, error) {
	var households []entity.Household
	err := db.Where("ward_id = ?", wardID).Order("household_id ASC").Find(&households).Error
	if err != nil {
		return nil, err
	}
	return households, nil
}

func (r *householdRepository) FindAll(db *gorm.DB) ([]entity.Household, error) {
	var households []entity.Household
	err := db.Order("household_id ASC").Find(&households).Error
	if err != nil {
		return nil, err
	}
	return households, nil
}

func (r *householdRepository) Update(db *gorm.DB, household *entity.Household) error {
	return db.Save(household).Error
}

func (r *householdRepository) SearchByFamilyHead(db *gorm.DB, query string) ([]entity.Household, error) {
	var households []entity.Household
	err := db.Where("family_head LIKE ?", "%"+query+"%").Order("household_id ASC").Find(&households).Error
	if err != nil {
		return nil, err
	}
	return households, nil
}
