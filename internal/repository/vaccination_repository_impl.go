package repository

import (
	"uhc-health-portal/internal/domain/entity"
	domainRepo "uhc-health-portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vaccinationRepository struct{}

func NewVaccinationRepository() domainRepo.VaccinationRepository {
	return &vaccinationRepository{}
}

func (r *vaccinationRepository) Create(db *gorm.DB, vaccination *entity.Vaccination) error {
	return db.Create(vaccination).Error
}

func (r *vaccinationRepository) FindByMember(db *gorm.DB, memberID uuid.UUID) ([]entity.Vaccination, error) {
	var vaccinations []entity.Vaccination
	err := db.Where("member_id = ?", memberID).Order("vaccination_date ASC").Find(&vaccinations).Error
	if err != nil {
		return nil, err
	}
	return vaccinations, nil
}
