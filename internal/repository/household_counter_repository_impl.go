package repository

import (
	"uhc-health-portal/internal/domain/entity"
	domainRepo "uhc-health-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type householdCounterRepository struct{}

func NewHouseholdCounterRepository() domainRepo.HouseholdCounterRepository {
	return &householdCounterRepository{}
}

// Next returns the next member sequence number for a household. The increment
// is a single UPDATE statement, so two concurrent allocations for the same
// household serialize on the row and cannot observe the same value. The first
// allocation seeds the counter from the existing member count, which keeps
// sequences contiguous for households that predate the counter table.
func (r *householdCounterRepository) Next(db *gorm.DB, householdID string) (int, error) {
	result := db.Model(&entity.HouseholdCounter{}).
		Where("household_id = ?", householdID).
		UpdateColumn("member_seq", gorm.Expr("member_seq + 1"))
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&entity.Member{}).Where("household_id = ?", householdID).Count(&count).Error; err != nil {
			return 0, err
		}
		counter := entity.HouseholdCounter{HouseholdID: householdID, MemberSeq: int(count) + 1}
		if err := db.Create(&counter).Error; err != nil {
			// Lost the race to create the row; retry the increment once.
			retry := db.Model(&entity.HouseholdCounter{}).
				Where("household_id = ?", householdID).
				UpdateColumn("member_seq", gorm.Expr("member_seq + 1"))
			if retry.Error != nil {
				return 0, retry.Error
			}
		} else {
			return counter.MemberSeq, nil
		}
	}

	var counter entity.HouseholdCounter
	if err := db.Where("household_id = ?", householdID).First(&counter).Error; err != nil {
		return 0, err
	}
	return counter.MemberSeq, nil
}
