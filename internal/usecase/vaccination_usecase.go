package usecase

import (
	"context"
	"errors"

	"uhc-health-portal/internal/delivery/dto"
	"uhc-health-portal/internal/domain/entity"
	"uhc-health-portal/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrMemberNotFound = errors.New("member not found")

type VaccinationUsecase interface {
	AddVaccination(ctx context.Context, memberID uuid.UUID, req *dto.AddVaccinationRequest) (*entity.Vaccination, error)
	GetVaccinationsByMember(ctx context.Context, memberID uuid.UUID) ([]entity.Vaccination, error)
}

type vaccinationUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	vaccinationRepo repository.VaccinationRepository
	memberRepo      repository.MemberRepository
}

func NewVaccinationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	vaccinationRepo repository.VaccinationRepository,
	memberRepo repository.MemberRepository,
) VaccinationUsecase {
	return &vaccinationUsecase{
		db:              db,
		log:             log,
		vaccinationRepo: vaccinationRepo,
		memberRepo:      memberRepo,
	}
}

func (u *vaccinationUsecase) AddVaccination(ctx context.Context, memberID uuid.UUID, req *dto.AddVaccinationRequest) (*entity.Vaccination, error) {
	db := u.db.WithContext(ctx)

	member, err := u.memberRepo.FindByID(db, memberID)
	if err != nil {
		u.log.Warnf("Failed to find member for vaccination: %+v", err)
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	vaccination := &entity.Vaccination{
		ID:              uuid.New(),
		MemberID:        member.ID,
		VaccineName:     req.VaccineName,
		VaccinationDate: req.VaccinationDate,
	}

	if err := u.vaccinationRepo.Create(db, vaccination); err != nil {
		u.log.Warnf("Failed to create vaccination: %+v", err)
		return nil, err
	}
	return vaccination, nil
}

func (u *vaccinationUsecase) GetVaccinationsByMember(ctx context.Context, memberID uuid.UUID) ([]entity.Vaccination, error) {
	vaccinations, err := u.vaccinationRepo.FindByMember(u.db.WithContext(ctx), memberID)
	if err != nil {
		u.log.Warnf("Failed to find vaccinations by member: %+v", err)
		return nil, err
	}
	return vaccinations, nil
}
