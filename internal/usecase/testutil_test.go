package usecase

import (
	"io"
	"testing"
	"time"

	"uhc-health-portal/config"
	"uhc-health-portal/internal/domain/entity"
	"uhc-health-portal/internal/service"
	"uhc-health-portal/pkg/token"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Ward{},
		&entity.AshaWorker{},
		&entity.Household{},
		&entity.HouseholdCounter{},
		&entity.Member{},
		&entity.Vaccination{},
		&entity.Hospital{},
		&entity.Appointment{},
		&entity.AshaReview{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testTokenService() *token.Service {
	return token.NewService(config.TokenConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
	})
}

// testReferenceCache points at an unreachable Redis so every operation takes
// the fail-open path and reads fall through to the database.
func testReferenceCache(log *logrus.Logger) *service.ReferenceCache {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	return service.NewReferenceCache(client, log)
}

func intPtr(i int) *int {
	return &i
}

func strPtr(s string) *string {
	return &s
}
