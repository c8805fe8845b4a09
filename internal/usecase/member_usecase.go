package usecase

import (
	"context"
	"fmt"
	"strings"

	"uhc-health-portal/internal/delivery/dto"
	"uhc-health-portal/internal/domain/entity"
	"uhc-health-portal/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type MemberUsecase interface {
	CreateMember(ctx context.Context, req *dto.CreateMemberRequest) (*entity.Member, error)
	GetMembersByWard(ctx context.Context, wardID string) ([]entity.Member, error)
	GetMembersByHousehold(ctx context.Context, householdID string) ([]entity.Member, error)
}

type memberUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	memberRepo    repository.MemberRepository
	householdRepo repository.HouseholdRepository
	counterRepo   repository.HouseholdCounterRepository
}

func NewMemberUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	memberRepo repository.MemberRepository,
	householdRepo repository.HouseholdRepository,
	counterRepo repository.HouseholdCounterRepository,
) MemberUsecase {
	return &memberUsecase{
		db:            db,
		log:           log,
		memberRepo:    memberRepo,
		householdRepo: householdRepo,
		counterRepo:   counterRepo,
	}
}

// CreateMember registers a member and assigns a per-household display ID of
// the form MEM-<household suffix>-<seq>, e.g. MEM-0099-001 for the first
// member of HH-12-0099. An explicit member_id in the request wins.
func (u *memberUsecase) CreateMember(ctx context.Context, req *dto.CreateMemberRequest) (*entity.Member, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	household, err := u.householdRepo.FindByID(tx, req.HouseholdID)
	if err != nil {
		u.log.Warnf("Failed to find household for member: %+v", err)
		return nil, err
	}
	if household == nil {
		return nil, ErrHouseholdNotFound
	}

	memberID := req.MemberID
	if memberID == "" {
		seq, err := u.counterRepo.Next(tx, household.HouseholdID)
		if err != nil {
			u.log.Warnf("Failed to allocate member sequence: %+v", err)
			return nil, err
		}
		memberID = formatMemberID(household.HouseholdID, seq)
	}

	member := &entity.Member{
		ID:          uuid.New(),
		MemberID:    &memberID,
		HouseholdID: household.HouseholdID,
		Name:        req.Name,
		Age:         req.Age,
		Relation:    req.Relation,
	}

	if err := u.memberRepo.Create(tx, member); err != nil {
		u.log.Warnf("Failed to create member: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit member creation: %+v", err)
		return nil, err
	}
	return member, nil
}

func (u *memberUsecase) GetMembersByWard(ctx context.Context, wardID string) ([]entity.Member, error) {
	members, err := u.memberRepo.FindByWard(u.db.WithContext(ctx), wardID)
	if err != nil {
		u.log.Warnf("Failed to find members by ward: %+v", err)
		return nil, err
	}
	return members, nil
}

func (u *memberUsecase) GetMembersByHousehold(ctx context.Context, householdID string) ([]entity.Member, error) {
	members, err := u.memberRepo.FindByHousehold(u.db.WithContext(ctx), householdID)
	if err != nil {
		u.log.Warnf("Failed to find members by household: %+v", err)
		return nil, err
	}
	return members, nil
}

// formatMemberID derives the display ID from the household ID's last dash
// segment and the allocated sequence number.
func formatMemberID(householdID string, seq int) string {
	suffix := householdID
	if idx := strings.LastIndex(householdID, "-"); idx >= 0 {
		suffix = householdID[idx+1:]
	}
	return fmt.Sprintf("MEM-%s-%03d", suffix, seq)
}
