package dto

import (
	"uhc-health-portal/internal/domain/entity"
)

// Request DTOs

type LoginRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Role        string `json:"role" validate:"omitempty,oneof=citizen doctor asha gov"`
	FullName    string `json:"full_name" validate:"omitempty"`
	WardID      string `json:"ward_id" validate:"omitempty"`
	HouseholdID string `json:"household_id" validate:"omitempty"`
}

// Response DTOs

// LoginResponse is the user row plus the session token. Nothing server-side
// requires the token; it exists so the client has a session artifact.
type LoginResponse struct {
	*entity.User
	Token string `json:"token,omitempty"`
}
