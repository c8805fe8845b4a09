package usecase

import (
	"context"
	"errors"

	"uhc-health-portal/internal/delivery/dto"
	"uhc-health-portal/internal/domain/entity"
	"uhc-health-portal/internal/domain/repository"
	"uhc-health-portal/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrWardNotFound = errors.New("ward not found")

type WardUsecase interface {
	GetAllWards(ctx context.Context) ([]entity.Ward, error)
	GetWard(ctx context.Context, wardID string) (*entity.Ward, error)
	CreateWard(ctx context.Context, req *dto.CreateWardRequest) (*entity.Ward, error)
}

type wardUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	wardRepo repository.WardRepository
	refCache *service.ReferenceCache
}

func NewWardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	wardRepo repository.WardRepository,
	refCache *service.ReferenceCache,
) WardUsecase {
	return &wardUsecase{
		db:       db,
		log:      log,
		wardRepo: wardRepo,
		refCache: refCache,
	}
}

func (u *wardUsecase) GetAllWards(ctx context.Context) ([]entity.Ward, error) {
	var cached []entity.Ward
	if u.refCache.Get(ctx, service.CacheKeyWards, &cached) {
		return cached, nil
	}

	wards, err := u.wardRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all wards: %+v", err)
		return nil, err
	}

	u.refCache.Set(ctx, service.CacheKeyWards, wards)
	return wards, nil
}

func (u *wardUsecase) GetWard(ctx context.Context, wardID string) (*entity.Ward, error) {
	ward, err := u.wardRepo.FindByID(u.db.WithContext(ctx), wardID)
	if err != nil {
		u.log.Warnf("Failed to find ward: %+v", err)
		return nil, err
	}
	if ward == nil {
		return nil, ErrWardNotFound
	}
	return ward, nil
}

func (u *wardUsecase) CreateWard(ctx context.Context, req *dto.CreateWardRequest) (*entity.Ward, error) {
	ward := &entity.Ward{
		WardID:                    req.WardID,
		State:                     req.State,
		District:                  req.District,
		WardName:                  req.WardName,
		WardNumber:                req.WardNumber,
		CleanlinessRate:           req.CleanlinessRate,
		VaccinationCompletionRate: req.VaccinationCompletionRate,
	}

	if err := u.wardRepo.Create(u.db.WithContext(ctx), ward); err != nil {
		u.log.Warnf("Failed to create ward: %+v", err)
		return nil, err
	}

	u.refCache.Invalidate(ctx, service.CacheKeyWards)
	return ward, nil
}
