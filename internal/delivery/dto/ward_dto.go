package dto

type CreateWardRequest struct {
	WardID                    string `json:"ward_id" validate:"required"`
	State                     string `json:"state" validate:"required"`
	District                  string `json:"district" validate:"required"`
	WardName                  string `json:"ward_name" validate:"required"`
	WardNumber                int    `json:"ward_number" validate:"required,gte=1"`
	CleanlinessRate           *int   `json:"cleanliness_rate" validate:"omitempty,gte=0,lte=100"`
	VaccinationCompletionRate *int   `json:"vaccination_completion_rate" validate:"omitempty,gte=0,lte=100"`
}
