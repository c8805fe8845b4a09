package repository

import (
	"errors"

	"uhc-health-portal/internal/domain/entity"
	domainRepo "uhc-health-portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type memberRepository struct{}

func NewMemberRepository() domainRepo.MemberRepository {
	return &memberRepository{}
}

func (r *memberRepository) Create(db *gorm.DB, member *entity.Member) error {
	return db.Create(member).Error
}

func (r *memberRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Member, error) {
	var member entity.Member
	err := db.Where("id = ?", id).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByHousehold(db *gorm.DB, householdID string) ([]entity.Member, error) {
	var members []entity.Member
	err := db.Where("household_id = ?", householdID).Order("member_id ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// FindByWard resolves the ward's households first and then selects members in
// that set. Members are not scoped to a ward directly, so this is a two-step
// join. A ward with no households yields an empty list, not an error.
func (r *memberRepository) FindByWard(db *gorm.DB, wardID string) ([]entity.Member, error) {
	var householdIDs []string
	err := db.Model(&entity.Household{}).Where("ward_id = ?", wardID).Pluck("household_id", &householdIDs).Error
	if err != nil {
		return nil, err
	}
	if len(householdIDs) == 0 {
		return []entity.Member{}, nil
	}

	var members []entity.Member
	err = db.Where("household_id IN ?", householdIDs).Order("household_id ASC, member_id ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) CountByHousehold(db *gorm.DB, householdID string) (int64, error) {
	var count int64
	err := db.Model(&entity.Member{}).Where("household_id = ?", householdID).Count(&count).Error
	return count, err
}
