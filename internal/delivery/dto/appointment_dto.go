package dto

type CreateAppointmentRequest struct {
	DoctorID        string `json:"doctor_id" validate:"required"`
	PatientID       string `json:"patient_id" validate:"required"`
	AppointmentDate string `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	AppointmentTime string `json:"appointment_time" validate:"required"`
	Reason          string `json:"reason" validate:"omitempty"`
	Notes           string `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	Notes  string `json:"notes" validate:"omitempty"`
}
