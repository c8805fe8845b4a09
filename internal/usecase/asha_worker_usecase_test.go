package usecase

import (
	"context"
	"testing"
	"time"

	"uhc-health-portal/internal/delivery/dto"
	"uhc-health-portal/internal/domain/entity"
	"uhc-health-portal/internal/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newAshaWorkerUsecase(db *gorm.DB) AshaWorkerUsecase {
	return NewAshaWorkerUsecase(db, testLogger(), repository.NewAshaWorkerRepository())
}

func TestCreateWorkerGeneratesID(t *testing.T) {
	db := setupTestDB(t)
	uc := newAshaWorkerUsecase(db)

	worker, err := uc.CreateWorker(context.Background(), &dto.CreateAshaWorkerRequest{
		Name:   "Anitha K",
		Phone:  "9876543210",
		WardID: "WARD-KL-ER-12",
		Email:  "anitha@asha.kerala.gov.in",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, worker.AshaID)
	assert.Equal(t, entity.AshaStatusActive, worker.Status)
}

func TestCreateWorkerExplicitID(t *testing.T) {
	db := setupTestDB(t)
	uc := newAshaWorkerUsecase(db)

	worker, err := uc.CreateWorker(context.Background(), &dto.CreateAshaWorkerRequest{
		AshaID: "ASHA-12-001",
		Name:   "Anitha K",
		Phone:  "9876543210",
		WardID: "WARD-KL-ER-12",
	})
	assert.NoError(t, err)
	assert.Equal(t, "ASHA-12-001", worker.AshaID)
}

func TestSuspendReactivateRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	uc := newAshaWorkerUsecase(db)
	ctx := context.Background()

	created, err := uc.CreateWorker(ctx, &dto.CreateAshaWorkerRequest{
		AshaID: "ASHA-12-001",
		Name:   "Anitha K",
		Phone:  "9876543210",
		WardID: "WARD-KL-ER-12",
	})
	assert.NoError(t, err)

	suspended, err := uc.SuspendWorker(ctx, created.AshaID, &dto.SuspendAshaRequest{
		Reason:      "Irregular visits",
		SuspendedBy: "gov-officer@kerala.gov.in",
	})
	assert.NoError(t, err)
	assert.Equal(t, entity.AshaStatusSuspended, suspended.Status)
	if assert.NotNil(t, suspended.SuspensionReason) {
		assert.Equal(t, "Irregular visits", *suspended.SuspensionReason)
	}
	if assert.NotNil(t, suspended.SuspendedBy) {
		assert.Equal(t, "gov-officer@kerala.gov.in", *suspended.SuspendedBy)
	}
	if assert.NotNil(t, suspended.SuspendedAt) {
		assert.Equal(t, time.Now().Format("2006-01-02"), *suspended.SuspendedAt)
	}

	reactivated, err := uc.ReactivateWorker(ctx, created.AshaID)
	assert.NoError(t, err)
	assert.Equal(t, entity.AshaStatusActive, reactivated.Status)
	assert.Nil(t, reactivated.SuspensionReason)
	assert.Nil(t, reactivated.SuspendedBy)
	assert.Nil(t, reactivated.SuspendedAt)

	// Round trip leaves everything but status history untouched.
	assert.Equal(t, created.Name, reactivated.Name)
	assert.Equal(t, created.Phone, reactivated.Phone)
	assert.Equal(t, created.WardID, reactivated.WardID)

	// The cleared fields are really null in storage, not just in the returned
	// struct.
	var stored entity.AshaWorker
	assert.NoError(t, db.First(&stored, "asha_id = ?", created.AshaID).Error)
	assert.Nil(t, stored.SuspensionReason)
	assert.Nil(t, stored.SuspendedAt)
}

func TestSuspendWithoutReason(t *testing.T) {
	db := setupTestDB(t)
	uc := newAshaWorkerUsecase(db)
	ctx := context.Background()

	_, err := uc.CreateWorker(ctx, &dto.CreateAshaWorkerRequest{
		AshaID: "ASHA-12-002",
		Name:   "Lekha R",
		Phone:  "9876543211",
		WardID: "WARD-KL-ER-12",
	})
	assert.NoError(t, err)

	suspended, err := uc.SuspendWorker(ctx, "ASHA-12-002", &dto.SuspendAshaRequest{})
	assert.NoError(t, err)
	assert.Equal(t, entity.AshaStatusSuspended, suspended.Status)
	assert.Nil(t, suspended.SuspensionReason)
	assert.NotNil(t, suspended.SuspendedAt)
}

func TestUpdateAndDeleteWorker(t *testing.T) {
	db := setupTestDB(t)
	uc := newAshaWorkerUsecase(db)
	ctx := context.Background()

	_, err := uc.CreateWorker(ctx, &dto.CreateAshaWorkerRequest{
		AshaID: "ASHA-12-003",
		Name:   "Meera Nair",
		Phone:  "9876543212",
		WardID: "WARD-KL-ER-12",
	})
	assert.NoError(t, err)

	updated, err := uc.UpdateWorker(ctx, "ASHA-12-003", &dto.UpdateAshaWorkerRequest{Phone: "9000000000"})
	assert.NoError(t, err)
	assert.Equal(t, "9000000000", updated.Phone)
	assert.Equal(t, "Meera Nair", updated.Name)

	assert.NoError(t, uc.DeleteWorker(ctx, "ASHA-12-003"))
	assert.ErrorIs(t, uc.DeleteWorker(ctx, "ASHA-12-003"), ErrAshaWorkerNotFound)

	_, err = uc.UpdateWorker(ctx, "ASHA-12-003", &dto.UpdateAshaWorkerRequest{Phone: "1"})
	assert.ErrorIs(t, err, ErrAshaWorkerNotFound)
}

func TestWorkersByWard(t *testing.T) {
	db := setupTestDB(t)
	uc := newAshaWorkerUsecase(db)
	ctx := context.Background()

	for _, w := range []dto.CreateAshaWorkerRequest{
		{AshaID: "ASHA-12-001", Name: "Anitha K", Phone: "1", WardID: "WARD-KL-ER-12"},
		{AshaID: "ASHA-12-002", Name: "Lekha R", Phone: "2", WardID: "WARD-KL-ER-12"},
		{AshaID: "ASHA-13-001", Name: "Devi S", Phone: "3", WardID: "WARD-KL-ER-13"},
	} {
		req := w
		_, err := uc.CreateWorker(ctx, &req)
		assert.NoError(t, err)
	}

	inWard, err := uc.GetWorkersByWard(ctx, "WARD-KL-ER-12")
	assert.NoError(t, err)
	assert.Len(t, inWard, 2)

	all, err := uc.GetAllWorkers(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}
