package usecase

import (
	"context"
	"errors"

	"uhc-health-portal/internal/converter"
	"uhc-health-portal/internal/delivery/dto"
	"uhc-health-portal/internal/domain/entity"
	"uhc-health-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrHouseholdNotFound = errors.New("household not found")

type HouseholdUsecase interface {
	GetHouseholdDetail(ctx context.Context, householdID string) (*dto.HouseholdDetailResponse, error)
	GetHouseholdsByWard(ctx context.Context, wardID string) ([]entity.Household, error)
	GetAllHouseholds(ctx context.Context) ([]entity.Household, error)
	CreateHousehold(ctx context.Context, req *dto.CreateHouseholdRequest) (*entity.Household, error)
	UpdateHousehold(ctx context.Context, householdID string, req *dto.UpdateHouseholdRequest) (*entity.Household, error)
	SearchPatients(ctx context.Context, query string) ([]dto.HouseholdSearchResult, error)
}

type householdUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	householdRepo   repository.HouseholdRepository
	memberRepo      repository.MemberRepository
	vaccinationRepo repository.VaccinationRepository
}

func NewHouseholdUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	householdRepo repository.HouseholdRepository,
	memberRepo repository.MemberRepository,
	vaccinationRepo repository.VaccinationRepository,
) HouseholdUsecase {
	return &householdUsecase{
		db:              db,
		log:             log,
		householdRepo:   householdRepo,
		memberRepo:      memberRepo,
		vaccinationRepo: vaccinationRepo,
	}
}

// GetHouseholdDetail returns the household with members and each member's
// vaccinations nested underneath.
func (u *householdUsecase) GetHouseholdDetail(ctx context.Context, householdID string) (*dto.HouseholdDetailResponse, error) {
	db := u.db.WithContext(ctx)

	household, err := u.householdRepo.FindByID(db, householdID)
	if err != nil {
		u.log.Warnf("Failed to find household: %+v", err)
		return nil, err
	}
	if household == nil {
		return nil, ErrHouseholdNotFound
	}

	members, err := u.memberRepo.FindByHousehold(db, household.HouseholdID)
	if err != nil {
		u.log.Warnf("Failed to find household members: %+v", err)
		return nil, err
	}

	nested := make([]dto.MemberWithVaccinations, len(members))
	for i, member := range members {
		vaccinations, err := u.vaccinationRepo.FindByMember(db, member.ID)
		if err != nil {
			u.log.Warnf("Failed to find member vaccinations: %+v", err)
			return nil, err
		}
		if vaccinations == nil {
			vaccinations = []entity.Vaccination{}
		}
		nested[i] = dto.MemberWithVaccinations{
			Member:       member,
			Vaccinations: vaccinations,
		}
	}

	return converter.HouseholdToDetailResponse(household, nested), nil
}

func (u *householdUsecase) GetHouseholdsByWard(ctx context.Context, wardID string) ([]entity.Household, error) {
	households, err := u.householdRepo.FindByWard(u.db.WithContext(ctx), wardID)
	if err != nil {
		u.log.Warnf("Failed to find households by ward: %+v", err)
		return nil, err
	}
	return households, nil
}

func (u *householdUsecase) GetAllHouseholds(ctx context.Context) ([]entity.Household, error) {
	households, err := u.householdRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all households: %+v", err)
		return nil, err
	}
	return households, nil
}

func (u *householdUsecase) CreateHousehold(ctx context.Context, req *dto.CreateHouseholdRequest) (*entity.Household, error) {
	household := &entity.Household{
		HouseholdID:           req.HouseholdID,
		WardID:                req.WardID,
		FamilyName:            req.FamilyName,
		FamilyHead:            req.FamilyHead,
		CleanlinessScore:      req.CleanlinessScore,
		VaccinationCompletion: req.VaccinationCompletion,
		LastVisit:             req.LastVisit,
		Address:               req.Address,
		UhcID:                 req.UhcID,
	}

	if err := u.householdRepo.Create(u.db.WithContext(ctx), household); err != nil {
		u.log.Warnf("Failed to create household: %+v", err)
		return nil, err
	}
	return household, nil
}

func (u *householdUsecase) UpdateHousehold(ctx context.Context, householdID string, req *dto.UpdateHouseholdRequest) (*entity.Household, error) {
	db := u.db.WithContext(ctx)

	household, err := u.householdRepo.FindByID(db, householdID)
	if err != nil {
		u.log.Warnf("Failed to find household: %+v", err)
		return nil, err
	}
	if household == nil {
		return nil, ErrHouseholdNotFound
	}

	if req.FamilyName != "" {
		household.FamilyName = req.FamilyName
	}
	if req.FamilyHead != "" {
		household.FamilyHead = req.FamilyHead
	}
	if req.CleanlinessScore != nil {
		household.CleanlinessScore = req.CleanlinessScore
	}
	if req.VaccinationCompletion != nil {
		household.VaccinationCompletion = req.VaccinationCompletion
	}
	if req.LastVisit != nil {
		household.LastVisit = req.LastVisit
	}
	if req.Address != nil {
		household.Address = req.Address
	}

	if err := u.householdRepo.Update(db, household); err != nil {
		u.log.Warnf("Failed to update household: %+v", err)
		return nil, err
	}
	return household, nil
}

// SearchPatients matches the query as a substring of family_head only; member
// names and UHC IDs are not searched.
func (u *householdUsecase) SearchPatients(ctx context.Context, query string) ([]dto.HouseholdSearchResult, error) {
	db := u.db.WithContext(ctx)

	households, err := u.householdRepo.SearchByFamilyHead(db, query)
	if err != nil {
		u.log.Warnf("Failed to search households: %+v", err)
		return nil, err
	}

	membersByHousehold := make(map[string][]entity.Member, len(households))
	for _, h := range households {
		members, err := u.memberRepo.FindByHousehold(db, h.HouseholdID)
		if err != nil {
			u.log.Warnf("Failed to find members for search result: %+v", err)
			return nil, err
		}
		membersByHousehold[h.HouseholdID] = members
	}

	return converter.HouseholdsToSearchResults(households, membersByHousehold), nil
}
