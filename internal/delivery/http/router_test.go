package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"uhc-health-portal/config"
	"uhc-health-portal/internal/delivery/http/handler"
	"uhc-health-portal/internal/delivery/http/middleware"
	"uhc-health-portal/internal/domain/entity"
	"uhc-health-portal/internal/repository"
	"uhc-health-portal/internal/service"
	"uhc-health-portal/internal/usecase"
	"uhc-health-portal/pkg/token"
	"uhc-health-portal/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestRouter wires the full stack against an in-memory database and an
// unreachable Redis (the cache fails open), so requests exercise the real
// routing, validation and storage paths.
func setupTestRouter(t *testing.T) (*mux.Router, *gorm.DB) {
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

	log := logrus.New()
	log.SetOutput(io.Discard)

	tokenService := token.NewService(config.TokenConfig{Secret: "test-secret", Expiry: time.Hour})
	customValidator := validator.NewValidator()
	refCache := service.NewReferenceCache(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), log)

	userRepo := repository.NewUserRepository()
	wardRepo := repository.NewWardRepository()
	ashaRepo := repository.NewAshaWorkerRepository()
	householdRepo := repository.NewHouseholdRepository()
	counterRepo := repository.NewHouseholdCounterRepository()
	memberRepo := repository.NewMemberRepository()
	vaccinationRepo := repository.NewVaccinationRepository()
	hospitalRepo := repository.NewHospitalRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	reviewRepo := repository.NewAshaReviewRepository()

	router := NewRouter(
		handler.NewAuthHandler(usecase.NewAuthUsecase(db, log, userRepo, ashaRepo, tokenService), customValidator),
		handler.NewWardHandler(usecase.NewWardUsecase(db, log, wardRepo, refCache), customValidator),
		handler.NewHouseholdHandler(usecase.NewHouseholdUsecase(db, log, householdRepo, memberRepo, vaccinationRepo), customValidator),
		handler.NewMemberHandler(usecase.NewMemberUsecase(db, log, memberRepo, householdRepo, counterRepo), customValidator),
		handler.NewVaccinationHandler(usecase.NewVaccinationUsecase(db, log, vaccinationRepo, memberRepo), customValidator),
		handler.NewAshaWorkerHandler(usecase.NewAshaWorkerUsecase(db, log, ashaRepo), customValidator),
		handler.NewReviewHandler(usecase.NewReviewUsecase(db, log, reviewRepo, ashaRepo), customValidator),
		handler.NewAppointmentHandler(usecase.NewAppointmentUsecase(db, log, appointmentRepo), customValidator),
		handler.NewHospitalHandler(usecase.NewHospitalUsecase(db, log, hospitalRepo, refCache), customValidator),
		middleware.NewCORSMiddleware(),
	)

	return router.Setup(), db
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	if err := json.Unmarshal(rec.Body.Bytes(), dest); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestLoginValidation(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{"role": "citizen"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "x@example.com",
		"role":  "superadmin",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginAshaMissingWard(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "anitha@asha.kerala.gov.in",
		"role":  "asha",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginGovDomain(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "x@yahoo.com",
		"role":  "gov",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "x@kerala.gov.in",
		"role":  "gov",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	decodeBody(t, rec, &body)
	assert.Equal(t, "gov", body["role"])
	assert.NotEmpty(t, body["token"])
}

func TestGetUserNotFound(t *testing.T) {
	router, _ := setupTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/auth/user/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHouseholdLookupNeverFourOhFours(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/households/HH-00-0000", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	decodeBody(t, rec, &body)
	assert.Equal(t, "HH-00-0000", body["household_id"])
	assert.Equal(t, "Sample Family", body["family_head"])
	assert.Empty(t, body["members"])
}

func TestMembersByWardEmptyArray(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/members/ward/WARD-KL-ER-99", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestSearchPatientsEmptyQuery(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/search/patients", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateHouseholdBoundsValidation(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/households", map[string]interface{}{
		"household_id":      "HH-12-0001",
		"ward_id":           "WARD-KL-ER-12",
		"family_name":       "Kumar Family",
		"family_head":       "Ramesh Kumar",
		"cleanliness_score": 120,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHouseholdMemberVaccinationFlow(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/households", map[string]interface{}{
		"household_id": "HH-12-0042",
		"ward_id":      "WARD-KL-ER-12",
		"family_name":  "Nair Family",
		"family_head":  "Gopal Nair",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/members", map[string]interface{}{
		"household_id": "HH-12-0042",
		"name":         "Gopal Nair",
		"age":          45,
		"relation":     "Father",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	var member map[string]interface{}
	decodeBody(t, rec, &member)
	assert.Equal(t, "MEM-0042-001", member["member_id"])

	rec = doJSON(t, router, http.MethodPost, "/api/vaccinations/member/"+member["id"].(string)+"/add", map[string]string{
		"vaccine_name":     "COVID Dose 1",
		"vaccination_date": "2021-05-12",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/households/HH-12-0042", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var detail struct {
		HouseholdID string `json:"household_id"`
		Members     []struct {
			MemberID     string `json:"member_id"`
			Vaccinations []struct {
				VaccineName string `json:"vaccine_name"`
			} `json:"vaccinations"`
		} `json:"members"`
	}
	decodeBody(t, rec, &detail)
	assert.Equal(t, "HH-12-0042", detail.HouseholdID)
	if assert.Len(t, detail.Members, 1) {
		assert.Equal(t, "MEM-0042-001", detail.Members[0].MemberID)
		if assert.Len(t, detail.Members[0].Vaccinations, 1) {
			assert.Equal(t, "COVID Dose 1", detail.Members[0].Vaccinations[0].VaccineName)
		}
	}
}

func TestVaccinationRequiresFields(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/vaccinations/member/"+uuid.NewString()+"/add", map[string]string{
		"vaccine_name": "MMR",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAshaSuspendWithEmptyBody(t *testing.T) {
	router, db := setupTestRouter(t)

	worker := entity.AshaWorker{AshaID: "ASHA-12-001", WardID: "WARD-KL-ER-12", Name: "Anitha K", Phone: "9876543210", Status: entity.AshaStatusActive}
	assert.NoError(t, db.Create(&worker).Error)

	rec := doJSON(t, router, http.MethodPost, "/api/asha/ASHA-12-001/suspend", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	decodeBody(t, rec, &body)
	assert.Equal(t, "suspended", body["status"])

	rec = doJSON(t, router, http.MethodPost, "/api/asha/ASHA-12-001/reactivate", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &body)
	assert.Equal(t, "active", body["status"])
	assert.Nil(t, body["suspended_at"])
}

func TestReviewRatingBounds(t *testing.T) {
	router, db := setupTestRouter(t)

	worker := entity.AshaWorker{AshaID: "ASHA-12-001", WardID: "WARD-KL-ER-12", Name: "Anitha K", Phone: "9876543210", Status: entity.AshaStatusActive}
	assert.NoError(t, db.Create(&worker).Error)

	rec := doJSON(t, router, http.MethodPost, "/api/asha/ASHA-12-001/reviews", map[string]interface{}{
		"citizen_id": "citizen-1",
		"rating":     6,
		"visit_date": "2025-08-20",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/asha/ASHA-12-001/reviews", map[string]interface{}{
		"citizen_id": "citizen-1",
		"rating":     5,
		"visit_date": "2025-08-20",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestWardRouting(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/wards", map[string]interface{}{
		"ward_id":     "WARD-KL-ER-12",
		"state":       "Kerala",
		"district":    "Ernakulam",
		"ward_name":   "Gandhi Nagar",
		"ward_number": 12,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/wards/WARD-KL-ER-12", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/wards/WARD-KL-ER-99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHouseholdStaticRoutesResolve(t *testing.T) {
	router, db := setupTestRouter(t)

	h := entity.Household{HouseholdID: "HH-12-0001", WardID: "WARD-KL-ER-12", FamilyName: "Kumar Family", FamilyHead: "Ramesh Kumar"}
	assert.NoError(t, db.Create(&h).Error)

	// /households/all must hit the list handler, not the {householdId} lookup.
	rec := doJSON(t, router, http.MethodGet, "/api/households/all", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var households []map[string]interface{}
	decodeBody(t, rec, &households)
	assert.Len(t, households, 1)

	rec = doJSON(t, router, http.MethodGet, "/api/households/ward/WARD-KL-ER-12", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &households)
	assert.Len(t, households, 1)
}

func TestCORSHeaders(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/health", nil)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}
