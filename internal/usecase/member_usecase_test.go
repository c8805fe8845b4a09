package usecase

import (
	"context"
	"testing"

	"uhc-health-portal/internal/delivery/dto"
	"uhc-health-portal/internal/domain/entity"
	"uhc-health-portal/internal/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newMemberUsecase(db *gorm.DB) MemberUsecase {
	return NewMemberUsecase(
		db,
		testLogger(),
		repository.NewMemberRepository(),
		repository.NewHouseholdRepository(),
		repository.NewHouseholdCounterRepository(),
	)
}

func createTestHousehold(t *testing.T, db *gorm.DB, householdID, wardID string) {
	h := entity.Household{
		HouseholdID: householdID,
		WardID:      wardID,
		FamilyName:  "Test Family",
		FamilyHead:  "Test Head",
	}
	assert.NoError(t, db.Create(&h).Error)
}

func TestMemberIDSequencing(t *testing.T) {
	db := setupTestDB(t)
	uc := newMemberUsecase(db)
	ctx := context.Background()
	createTestHousehold(t, db, "HH-12-0099", "WARD-KL-ER-12")

	expected := []string{"MEM-0099-001", "MEM-0099-002", "MEM-0099-003"}
	names := []string{"First", "Second", "Third"}
	for i, name := range names {
		member, err := uc.CreateMember(ctx, &dto.CreateMemberRequest{
			HouseholdID: "HH-12-0099",
			Name:        name,
			Age:         30,
			Relation:    "Father",
		})
		assert.NoError(t, err)
		if assert.NotNil(t, member.MemberID) {
			assert.Equal(t, expected[i], *member.MemberID)
		}
	}
}

func TestMemberSequenceSeedsFromExistingMembers(t *testing.T) {
	db := setupTestDB(t)
	uc := newMemberUsecase(db)
	createTestHousehold(t, db, "HH-12-0050", "WARD-KL-ER-12")

	// A member that predates counter-based allocation.
	legacy, err := uc.CreateMember(context.Background(), &dto.CreateMemberRequest{
		HouseholdID: "HH-12-0050",
		MemberID:    "MEM-0050-001",
		Name:        "Legacy",
		Age:         60,
		Relation:    "Grandfather",
	})
	assert.NoError(t, err)
	assert.Equal(t, "MEM-0050-001", *legacy.MemberID)

	next, err := uc.CreateMember(context.Background(), &dto.CreateMemberRequest{
		HouseholdID: "HH-12-0050",
		Name:        "Next",
		Age:         30,
		Relation:    "Son",
	})
	assert.NoError(t, err)
	assert.Equal(t, "MEM-0050-002", *next.MemberID)
}

func TestCreateMemberUnknownHousehold(t *testing.T) {
	db := setupTestDB(t)
	uc := newMemberUsecase(db)

	_, err := uc.CreateMember(context.Background(), &dto.CreateMemberRequest{
		HouseholdID: "HH-99-9999",
		Name:        "Nobody",
		Age:         20,
		Relation:    "Son",
	})
	assert.ErrorIs(t, err, ErrHouseholdNotFound)
}

func TestMembersByWardAggregation(t *testing.T) {
	db := setupTestDB(t)
	uc := newMemberUsecase(db)
	ctx := context.Background()

	createTestHousehold(t, db, "HH-12-0001", "WARD-KL-ER-12")
	createTestHousehold(t, db, "HH-12-0002", "WARD-KL-ER-12")
	createTestHousehold(t, db, "HH-13-0001", "WARD-KL-ER-13")

	for _, m := range []struct{ household, name string }{
		{"HH-12-0001", "Ramesh"},
		{"HH-12-0001", "Lakshmi"},
		{"HH-12-0002", "Shaji"},
		{"HH-13-0001", "Outsider"},
	} {
		_, err := uc.CreateMember(ctx, &dto.CreateMemberRequest{
			HouseholdID: m.household,
			Name:        m.name,
			Age:         30,
			Relation:    "Father",
		})
		assert.NoError(t, err)
	}

	members, err := uc.GetMembersByWard(ctx, "WARD-KL-ER-12")
	assert.NoError(t, err)
	assert.Len(t, members, 3)
	seen := map[string]bool{}
	for _, m := range members {
		assert.NotEqual(t, "Outsider", m.Name)
		assert.False(t, seen[m.ID.String()], "duplicate member in ward aggregation")
		seen[m.ID.String()] = true
	}
}

func TestMembersByWardEmptyWard(t *testing.T) {
	db := setupTestDB(t)
	uc := newMemberUsecase(db)

	members, err := uc.GetMembersByWard(context.Background(), "WARD-KL-ER-99")
	assert.NoError(t, err)
	assert.NotNil(t, members)
	assert.Empty(t, members)
}
