package dto

type CreateHospitalRequest struct {
	Name            string   `json:"name" validate:"required"`
	Address         string   `json:"address" validate:"required"`
	City            string   `json:"city" validate:"required"`
	Type            string   `json:"type" validate:"required,oneof=government private ngo"`
	Rating          *int     `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Specializations []string `json:"specializations" validate:"omitempty"`
	Phone           *string  `json:"phone" validate:"omitempty"`
	Email           *string  `json:"email" validate:"omitempty,email"`
}
