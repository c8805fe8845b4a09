package dto

import (
	"uhc-health-portal/internal/domain/entity"
)

// Request DTOs

type CreateHouseholdRequest struct {
	HouseholdID           string  `json:"household_id" validate:"required"`
	WardID                string  `json:"ward_id" validate:"required"`
	FamilyName            string  `json:"family_name" validate:"required"`
	FamilyHead            string  `json:"family_head" validate:"required"`
	CleanlinessScore      *int    `json:"cleanliness_score" validate:"omitempty,gte=0,lte=100"`
	VaccinationCompletion *int    `json:"vaccination_completion" validate:"omitempty,gte=0,lte=100"`
	LastVisit             *string `json:"last_visit" validate:"omitempty,datetime=2006-01-02"`
	Address               *string `json:"address" validate:"omitempty"`
	UhcID                 *string `json:"uhc_id" validate:"omitempty"`
}

type UpdateHouseholdRequest struct {
	FamilyName            string  `json:"family_name" validate:"omitempty"`
	FamilyHead            string  `json:"family_head" validate:"omitempty"`
	CleanlinessScore      *int    `json:"cleanliness_score" validate:"omitempty,gte=0,lte=100"`
	VaccinationCompletion *int    `json:"vaccination_completion" validate:"omitempty,gte=0,lte=100"`
	LastVisit             *string `json:"last_visit" validate:"omitempty,datetime=2006-01-02"`
	Address               *string `json:"address" validate:"omitempty"`
}

// Response DTOs

// MemberWithVaccinations nests a member's vaccination history the way the
// household detail endpoint serves it.
type MemberWithVaccinations struct {
	entity.Member
	Vaccinations []entity.Vaccination `json:"vaccinations"`
}

// HouseholdDetailResponse is a household with members and their vaccinations
// nested underneath.
type HouseholdDetailResponse struct {
	entity.Household
	Members []MemberWithVaccinations `json:"members"`
}

// HouseholdSearchResult is a search hit: the household plus its members.
type HouseholdSearchResult struct {
	entity.Household
	Members []entity.Member `json:"members"`
}

// HouseholdPlaceholderResponse is the synthesized body served when a
// household id does not resolve. The lookup deliberately never 404s.
type HouseholdPlaceholderResponse struct {
	HouseholdID string                   `json:"household_id"`
	FamilyName  string                   `json:"family_name,omitempty"`
	FamilyHead  string                   `json:"family_head,omitempty"`
	Members     []MemberWithVaccinations `json:"members"`
}
