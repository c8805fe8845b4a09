package dto

type AddVaccinationRequest struct {
	VaccineName     string `json:"vaccine_name" validate:"required"`
	VaccinationDate string `json:"vaccination_date" validate:"required,datetime=2006-01-02"`
}
