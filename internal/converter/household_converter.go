package converter

import (
	"uhc-health-portal/internal/delivery/dto"
	"uhc-health-portal/internal/domain/entity"
)

// HouseholdToDetailResponse nests members and their vaccinations under the
// household, matching the household detail wire shape.
func HouseholdToDetailResponse(household *entity.Household, members []dto.MemberWithVaccinations) *dto.HouseholdDetailResponse {
	if members == nil {
		members = []dto.MemberWithVaccinations{}
	}
	return &dto.HouseholdDetailResponse{
		Household: *household,
		Members:   members,
	}
}

// HouseholdsToSearchResults pairs each household hit with its members.
func HouseholdsToSearchResults(households []entity.Household, membersByHousehold map[string][]entity.Member) []dto.HouseholdSearchResult {
	results := make([]dto.HouseholdSearchResult, len(households))
	for i, h := range households {
		members := membersByHousehold[h.HouseholdID]
		if members == nil {
			members = []entity.Member{}
		}
		results[i] = dto.HouseholdSearchResult{
			Household: h,
			Members:   members,
		}
	}
	return results
}
