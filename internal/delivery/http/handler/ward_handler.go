package handler

import (
	"encoding/json"
	"net/http"

	"uhc-health-portal/internal/delivery/dto"
	"uhc-health-portal/internal/usecase"
	"uhc-health-portal/pkg/response"
	"uhc-health-portal/pkg/validator"

	"github.com/gorilla/mux"
)

type WardHandler struct {
	wardUsecase usecase.WardUsecase
	validator   *validator.CustomValidator
}

func NewWardHandler(wardUsecase usecase.WardUsecase, validator *validator.CustomValidator) *WardHandler {
	return &WardHandler{
		wardUsecase: wardUsecase,
		validator:   validator,
	}
}

func (h *WardHandler) GetAllWards(w http.ResponseWriter, r *http.Request) {
	wards, err := h.wardUsecase.GetAllWards(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get wards")
		return
	}
	response.JSON(w, http.StatusOK, wards)
}

func (h *WardHandler) GetWard(w http.ResponseWriter, r *http.Request) {
	ward, err := h.wardUsecase.GetWard(r.Context(), mux.Vars(r)["wardId"])
	if err != nil {
		switch err {
		case usecase.ErrWardNotFound:
			response.NotFound(w, "Ward not found")
		default:
			response.InternalServerError(w, "Failed to get ward")
		}
		return
	}
	response.JSON(w, http.StatusOK, ward)
}

func (h *WardHandler) CreateWard(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	ward, err := h.wardUsecase.CreateWard(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create ward")
		return
	}
	response.JSON(w, http.StatusCreated, ward)
}
