package usecase

import (
	"context"
	"time"

	"uhc-health-portal/internal/delivery/dto"
	"uhc-health-portal/internal/domain/entity"
	"uhc-health-portal/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ReviewUsecase interface {
	CreateReview(ctx context.Context, ashaID string, req *dto.CreateReviewRequest) (*entity.AshaReview, error)
	GetReviewsByAsha(ctx context.Context, ashaID string) ([]entity.AshaReview, error)
}

type reviewUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	reviewRepo repository.AshaReviewRepository
	ashaRepo   repository.AshaWorkerRepository
}

func NewReviewUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reviewRepo repository.AshaReviewRepository,
	ashaRepo repository.AshaWorkerRepository,
) ReviewUsecase {
	return &reviewUsecase{
		db:         db,
		log:        log,
		reviewRepo: reviewRepo,
		ashaRepo:   ashaRepo,
	}
}

func (u *reviewUsecase) CreateReview(ctx context.Context, ashaID string, req *dto.CreateReviewRequest) (*entity.AshaReview, error) {
	db := u.db.WithContext(ctx)

	worker, err := u.ashaRepo.FindByID(db, ashaID)
	if err != nil {
		u.log.Warnf("Failed to find ASHA worker for review: %+v", err)
		return nil, err
	}
	if worker == nil {
		return nil, ErrAshaWorkerNotFound
	}

	review := &entity.AshaReview{
		ID:         uuid.New(),
		AshaID:     worker.AshaID,
		CitizenID:  req.CitizenID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		VisitDate:  req.VisitDate,
		CreatedAt:  time.Now().Format("2006-01-02"),
	}

	if err := u.reviewRepo.Create(db, review); err != nil {
		u.log.Warnf("Failed to create ASHA review: %+v", err)
		return nil, err
	}
	return review, nil
}

func (u *reviewUsecase) GetReviewsByAsha(ctx context.Context, ashaID string) ([]entity.AshaReview, error) {
	reviews, err := u.reviewRepo.FindByAsha(u.db.WithContext(ctx), ashaID)
	if err != nil {
		u.log.Warnf("Failed to find reviews by ASHA worker: %+v", err)
		return nil, err
	}
	return reviews, nil
}
