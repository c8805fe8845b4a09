package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"uhc-health-portal/internal/delivery/dto"
	"uhc-health-portal/internal/domain/entity"
	"uhc-health-portal/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrAshaWorkerNotFound = errors.New("asha worker not found")

type AshaWorkerUsecase interface {
	GetAllWorkers(ctx context.Context) ([]entity.AshaWorker, error)
	GetWorkersByWard(ctx context.Context, wardID string) ([]entity.AshaWorker, error)
	CreateWorker(ctx context.Context, req *dto.CreateAshaWorkerRequest) (*entity.AshaWorker, error)
	UpdateWorker(ctx context.Context, ashaID string, req *dto.UpdateAshaWorkerRequest) (*entity.AshaWorker, error)
	DeleteWorker(ctx context.Context, ashaID string) error
	SuspendWorker(ctx context.Context, ashaID string, req *dto.SuspendAshaRequest) (*entity.AshaWorker, error)
	ReactivateWorker(ctx context.Context, ashaID string) (*entity.AshaWorker, error)
}

type ashaWorkerUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	ashaRepo repository.AshaWorkerRepository
}

func NewAshaWorkerUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	ashaRepo repository.AshaWorkerRepository,
) AshaWorkerUsecase {
	return &ashaWorkerUsecase{
		db:       db,
		log:      log,
		ashaRepo: ashaRepo,
	}
}

func (u *ashaWorkerUsecase) GetAllWorkers(ctx context.Context) ([]entity.AshaWorker, error) {
	workers, err := u.ashaRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all ASHA workers: %+v", err)
		return nil, err
	}
	return workers, nil
}

func (u *ashaWorkerUsecase) GetWorkersByWard(ctx context.Context, wardID string) ([]entity.AshaWorker, error) {
	workers, err := u.ashaRepo.FindByWard(u.db.WithContext(ctx), wardID)
	if err != nil {
		u.log.Warnf("Failed to find ASHA workers by ward: %+v", err)
		return nil, err
	}
	return workers, nil
}

func (u *ashaWorkerUsecase) CreateWorker(ctx context.Context, req *dto.CreateAshaWorkerRequest) (*entity.AshaWorker, error) {
	ashaID := req.AshaID
	if ashaID == "" {
		ashaID = fmt.Sprintf("ASHA-%s", strings.ToUpper(uuid.New().String()[:8]))
	}

	worker := &entity.AshaWorker{
		AshaID: ashaID,
		WardID: req.WardID,
		Name:   req.Name,
		Phone:  req.Phone,
		Status: entity.AshaStatusActive,
	}
	if req.Email != "" {
		email := req.Email
		worker.Email = &email
	}

	if err := u.ashaRepo.Create(u.db.WithContext(ctx), worker); err != nil {
		u.log.Warnf("Failed to create ASHA worker: %+v", err)
		return nil, err
	}
	return worker, nil
}

func (u *ashaWorkerUsecase) UpdateWorker(ctx context.Context, ashaID string, req *dto.UpdateAshaWorkerRequest) (*entity.AshaWorker, error) {
	db := u.db.WithContext(ctx)

	worker, err := u.ashaRepo.FindByID(db, ashaID)
	if err != nil {
		u.log.Warnf("Failed to find ASHA worker: %+v", err)
		return nil, err
	}
	if worker == nil {
		return nil, ErrAshaWorkerNotFound
	}

	if req.Name != "" {
		worker.Name = req.Name
	}
	if req.Phone != "" {
		worker.Phone = req.Phone
	}
	if req.WardID != "" {
		worker.WardID = req.WardID
	}
	if req.Email != "" {
		email := req.Email
		worker.Email = &email
	}

	if err := u.ashaRepo.Update(db, worker); err != nil {
		u.log.Warnf("Failed to update ASHA worker: %+v", err)
		return nil, err
	}
	return worker, nil
}

func (u *ashaWorkerUsecase) DeleteWorker(ctx context.Context, ashaID string) error {
	rows, err := u.ashaRepo.Delete(u.db.WithContext(ctx), ashaID)
	if err != nil {
		u.log.Warnf("Failed to delete ASHA worker: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrAshaWorkerNotFound
	}
	return nil
}

// SuspendWorker marks the worker suspended and stamps reason, actor and the
// current date. Suspending an already-suspended worker just overwrites the
// suspension context.
func (u *ashaWorkerUsecase) SuspendWorker(ctx context.Context, ashaID string, req *dto.SuspendAshaRequest) (*entity.AshaWorker, error) {
	db := u.db.WithContext(ctx)

	worker, err := u.ashaRepo.FindByID(db, ashaID)
	if err != nil {
		u.log.Warnf("Failed to find ASHA worker: %+v", err)
		return nil, err
	}
	if worker == nil {
		return nil, ErrAshaWorkerNotFound
	}

	today := time.Now().Format("2006-01-02")
	worker.Status = entity.AshaStatusSuspended
	worker.SuspendedAt = &today
	worker.SuspensionReason = nil
	worker.SuspendedBy = nil
	if req.Reason != "" {
		reason := req.Reason
		worker.SuspensionReason = &reason
	}
	if req.SuspendedBy != "" {
		suspendedBy := req.SuspendedBy
		worker.SuspendedBy = &suspendedBy
	}

	if err := u.ashaRepo.Update(db, worker); err != nil {
		u.log.Warnf("Failed to suspend ASHA worker: %+v", err)
		return nil, err
	}
	return worker, nil
}

// ReactivateWorker restores active status and clears every suspension field.
func (u *ashaWorkerUsecase) ReactivateWorker(ctx context.Context, ashaID string) (*entity.AshaWorker, error) {
	db := u.db.WithContext(ctx)

	worker, err := u.ashaRepo.FindByID(db, ashaID)
	if err != nil {
		u.log.Warnf("Failed to find ASHA worker: %+v", err)
		return nil, err
	}
	if worker == nil {
		return nil, ErrAshaWorkerNotFound
	}

	worker.Status = entity.AshaStatusActive
	worker.SuspensionReason = nil
	worker.SuspendedBy = nil
	worker.SuspendedAt = nil

	if err := u.ashaRepo.Update(db, worker); err != nil {
		u.log.Warnf("Failed to reactivate ASHA worker: %+v", err)
		return nil, err
	}
	return worker, nil
}
