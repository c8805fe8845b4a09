package usecase

import (
	"context"
	"errors"
	"strings"

	"uhc-health-portal/internal/delivery/dto"
	"uhc-health-portal/internal/domain/entity"
	"uhc-health-portal/internal/domain/repository"
	"uhc-health-portal/pkg/token"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrWardRequired      = errors.New("ward selection required for ASHA login")
	ErrNotGovDomain      = errors.New("government login requires an official email domain")
	ErrAshaNotRegistered = errors.New("no registered ASHA worker for this email")
)

// Email domains accepted for the government role.
var govEmailDomains = []string{"@gov.in", "@nic.in", "@kerala.gov.in"}

// Bare citizen logins are attached to the demo household so the citizen
// dashboard has data to show.
const defaultCitizenHousehold = "HH-12-0001"

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	ashaRepo     repository.AshaWorkerRepository
	tokenService *token.Service
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	ashaRepo repository.AshaWorkerRepository,
	tokenService *token.Service,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		ashaRepo:     ashaRepo,
		tokenService: tokenService,
	}
}

// Login upserts a portal account by email. Citizen, doctor and government
// accounts are provisioned on first contact; ASHA logins additionally require
// a ward selection and a pre-registered worker record matching the email.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	role := req.Role
	if role == "" {
		role = entity.RoleCitizen
	}

	if role == entity.RoleGov && !isGovEmail(req.Email) {
		return nil, ErrNotGovDomain
	}

	if role == entity.RoleAsha {
		if req.WardID == "" {
			return nil, ErrWardRequired
		}
		worker, err := u.ashaRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
		if err != nil {
			u.log.Warnf("Failed to look up ASHA worker by email: %+v", err)
			return nil, err
		}
		if worker == nil {
			return nil, ErrAshaNotRegistered
		}
	}

	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}

	if user == nil {
		user, err = u.provision(ctx, req, role)
		if err != nil {
			return nil, err
		}
	} else if updated := applyAssociations(user, req); updated {
		if err := u.userRepo.Update(u.db.WithContext(ctx), user); err != nil {
			u.log.Warnf("Failed to update user associations: %+v", err)
			return nil, err
		}
	}

	sessionToken, err := u.tokenService.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		// The login contract is the user row; a token failure is not fatal.
		u.log.Warnf("Failed to generate session token: %+v", err)
		sessionToken = ""
	}

	return &dto.LoginResponse{User: user, Token: sessionToken}, nil
}

func (u *authUsecase) provision(ctx context.Context, req *dto.LoginRequest, role string) (*entity.User, error) {
	fullName := req.FullName
	if fullName == "" {
		fullName = strings.Split(req.Email, "@")[0]
	}

	user := &entity.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Role:     role,
		FullName: fullName,
	}
	if req.WardID != "" {
		wardID := req.WardID
		user.WardID = &wardID
	}
	if req.HouseholdID != "" {
		householdID := req.HouseholdID
		user.HouseholdID = &householdID
	} else if role == entity.RoleCitizen {
		householdID := defaultCitizenHousehold
		user.HouseholdID = &householdID
	}

	if err := u.userRepo.Create(u.db.WithContext(ctx), user); err != nil {
		if isDuplicateKeyError(err, "email") {
			// Lost a concurrent first-login race; the row exists now.
			existing, findErr := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
			if findErr != nil || existing == nil {
				u.log.Warnf("Failed to recover from login upsert race: %+v", findErr)
				return nil, err
			}
			return existing, nil
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// applyAssociations mutates ward/household on subsequent logins when the
// request carries a new association.
func applyAssociations(user *entity.User, req *dto.LoginRequest) bool {
	updated := false
	if req.WardID != "" && (user.WardID == nil || *user.WardID != req.WardID) {
		wardID := req.WardID
		user.WardID = &wardID
		updated = true
	}
	if req.HouseholdID != "" && (user.HouseholdID == nil || *user.HouseholdID != req.HouseholdID) {
		householdID := req.HouseholdID
		user.HouseholdID = &householdID
		updated = true
	}
	return updated
}

func isGovEmail(email string) bool {
	lowered := strings.ToLower(email)
	for _, domain := range govEmailDomains {
		if strings.HasSuffix(lowered, domain) {
			return true
		}
	}
	return false
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
