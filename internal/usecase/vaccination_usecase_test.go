package usecase

import (
	"context"
	"testing"

	"uhc-health-portal/internal/delivery/dto"
	"uhc-health-portal/internal/domain/entity"
	"uhc-health-portal/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newVaccinationUsecase(db *gorm.DB) VaccinationUsecase {
	return NewVaccinationUsecase(db, testLogger(), repository.NewVaccinationRepository(), repository.NewMemberRepository())
}

func TestAddVaccination(t *testing.T) {
	db := setupTestDB(t)
	uc := newVaccinationUsecase(db)
	ctx := context.Background()

	createTestHousehold(t, db, "HH-12-0001", "WARD-KL-ER-12")
	member := entity.Member{ID: uuid.New(), HouseholdID: "HH-12-0001", Name: "Riya", Age: 7, Relation: "Daughter"}
	assert.NoError(t, db.Create(&member).Error)

	created, err := uc.AddVaccination(ctx, member.ID, &dto.AddVaccinationRequest{
		VaccineName:     "Polio Oral",
		VaccinationDate: "2023-09-05",
	})
	assert.NoError(t, err)
	assert.Equal(t, member.ID, created.MemberID)

	list, err := uc.GetVaccinationsByMember(ctx, member.ID)
	assert.NoError(t, err)
	if assert.Len(t, list, 1) {
		assert.Equal(t, "Polio Oral", list[0].VaccineName)
		assert.Equal(t, "2023-09-05", list[0].VaccinationDate)
	}
}

func TestAddVaccinationUnknownMember(t *testing.T) {
	db := setupTestDB(t)
	uc := newVaccinationUsecase(db)

	_, err := uc.AddVaccination(context.Background(), uuid.New(), &dto.AddVaccinationRequest{
		VaccineName:     "MMR",
		VaccinationDate: "2021-02-18",
	})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}
