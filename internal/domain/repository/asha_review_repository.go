package repository

import (
	"uhc-health-portal/internal/domain/entity"

	"gorm.io/gorm"
)

type AshaReviewRepository interface {
	Create(db *gorm.DB, review *entity.AshaReview) error
	FindByAsha(db *gorm.DB, ashaID string) ([]entity.AshaReview, error)
}
