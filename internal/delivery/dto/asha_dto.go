package dto

type CreateAshaWorkerRequest struct {
	AshaID string `json:"asha_id" validate:"omitempty"`
	Name   string `json:"name" validate:"required"`
	Phone  string `json:"phone" validate:"required"`
	WardID string `json:"ward_id" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
}

type UpdateAshaWorkerRequest struct {
	Name   string `json:"name" validate:"omitempty"`
	Phone  string `json:"phone" validate:"omitempty"`
	WardID string `json:"ward_id" validate:"omitempty"`
	Email  string `json:"email" validate:"omitempty,email"`
}

// SuspendAshaRequest carries the suspension context. The reason is not
// server-required; the admin UI enforces it.
type SuspendAshaRequest struct {
	Reason      string `json:"reason" validate:"omitempty"`
	SuspendedBy string `json:"suspended_by" validate:"omitempty"`
}
