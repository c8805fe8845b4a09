package handler

import (
	"encoding/json"
	"net/http"

	"uhc-health-portal/internal/delivery/dto"
	"uhc-health-portal/internal/usecase"
	"uhc-health-portal/pkg/response"
	"uhc-health-portal/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type VaccinationHandler struct {
	vaccinationUsecase usecase.VaccinationUsecase
	validator          *validator.CustomValidator
}

func NewVaccinationHandler(vaccinationUsecase usecase.VaccinationUsecase, validator *validator.CustomValidator) *VaccinationHandler {
	return &VaccinationHandler{
		vaccinationUsecase: vaccinationUsecase,
		validator:          validator,
	}
}

func (h *VaccinationHandler) AddVaccination(w http.ResponseWriter, r *http.Request) {
	memberID, err := uuid.Parse(mux.Vars(r)["memberId"])
	if err != nil {
		response.BadRequest(w, "Invalid member id")
		return
	}

	var req dto.AddVaccinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	vaccination, err := h.vaccinationUsecase.AddVaccination(r.Context(), memberID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMemberNotFound:
			response.NotFound(w, "Member not found")
		default:
			response.InternalServerError(w, "Failed to add vaccination")
		}
		return
	}
	response.JSON(w, http.StatusCreated, vaccination)
}

func (h *VaccinationHandler) GetVaccinationsByMember(w http.ResponseWriter, r *http.Request) {
	memberID, err := uuid.Parse(mux.Vars(r)["memberId"])
	if err != nil {
		response.BadRequest(w, "Invalid member id")
		return
	}

	vaccinations, err := h.vaccinationUsecase.GetVaccinationsByMember(r.Context(), memberID)
	if err != nil {
		response.InternalServerError(w, "Failed to get vaccinations")
		return
	}
	response.JSON(w, http.StatusOK, vaccinations)
}
