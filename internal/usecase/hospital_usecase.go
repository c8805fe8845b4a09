package usecase

import (
	"context"

	"uhc-health-portal/internal/delivery/dto"
	"uhc-health-portal/internal/domain/entity"
	"uhc-health-portal/internal/domain/repository"
	"uhc-health-portal/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type HospitalUsecase interface {
	GetAllHospitals(ctx context.Context) ([]entity.Hospital, error)
	CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*entity.Hospital, error)
}

type hospitalUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	hospitalRepo repository.HospitalRepository
	refCache     *service.ReferenceCache
}

func NewHospitalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	hospitalRepo repository.HospitalRepository,
	refCache *service.ReferenceCache,
) HospitalUsecase {
	return &hospitalUsecase{
		db:           db,
		log:          log,
		hospitalRepo: hospitalRepo,
		refCache:     refCache,
	}
}

func (u *hospitalUsecase) GetAllHospitals(ctx context.Context) ([]entity.Hospital, error) {
	var cached []entity.Hospital
	if u.refCache.Get(ctx, service.CacheKeyHospitals, &cached) {
		return cached, nil
	}

	hospitals, err := u.hospitalRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all hospitals: %+v", err)
		return nil, err
	}

	u.refCache.Set(ctx, service.CacheKeyHospitals, hospitals)
	return hospitals, nil
}

func (u *hospitalUsecase) CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*entity.Hospital, error) {
	hospital := &entity.Hospital{
		HospitalID:      uuid.New(),
		Name:            req.Name,
		Address:         req.Address,
		City:            req.City,
		Type:            req.Type,
		Rating:          req.Rating,
		Specializations: req.Specializations,
		Phone:           req.Phone,
		Email:           req.Email,
	}

	if err := u.hospitalRepo.Create(u.db.WithContext(ctx), hospital); err != nil {
		u.log.Warnf("Failed to create hospital: %+v", err)
		return nil, err
	}

	u.refCache.Invalidate(ctx, service.CacheKeyHospitals)
	return hospital, nil
}
