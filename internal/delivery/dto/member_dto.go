package dto

type CreateMemberRequest struct {
	HouseholdID string `json:"household_id" validate:"required"`
	MemberID    string `json:"member_id" validate:"omitempty"`
	Name        string `json:"name" validate:"required"`
	Age         int    `json:"age" validate:"gte=0,lte=150"`
	Relation    string `json:"relation" validate:"required"`
}
