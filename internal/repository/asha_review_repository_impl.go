package repository

import (
	"uhc-health-portal/internal/domain/entity"
	domainRepo "uhc-health-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type ashaReviewRepository struct{}

func NewAshaReviewRepository() domainRepo.AshaReviewRepository {
	return &ashaReviewRepository{}
}

func (r *ashaReviewRepository) Create(db *gorm.DB, review *entity.AshaReview) error {
	return db.Create(review).Error
}

func (r *ashaReviewRepository) FindByAsha(db *gorm.DB, ashaID string) ([]entity.AshaReview, error) {
	var reviews []entity.AshaReview
	err := db.Where("asha_id = ?", ashaID).Order("visit_date DESC").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
