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

type AshaWorkerHandler struct {
	ashaUsecase usecase.AshaWorkerUsecase
	validator   *validator.CustomValidator
}

func NewAshaWorkerHandler(ashaUsecase usecase.AshaWorkerUsecase, validator *validator.CustomValidator) *AshaWorkerHandler {
	return &AshaWorkerHandler{
		ashaUsecase: ashaUsecase,
		validator:   validator,
	}
}

func (h *AshaWorkerHandler) GetAllWorkers(w http.ResponseWriter, r *http.Request) {
	workers, err := h.ashaUsecase.GetAllWorkers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get ASHA workers")
		return
	}
	response.JSON(w, http.StatusOK, workers)
}

func (h *AshaWorkerHandler) CreateWorker(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAshaWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	worker, err := h.ashaUsecase.CreateWorker(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create ASHA worker")
		return
	}
	response.JSON(w, http.StatusCreated, worker)
}

func (h *AshaWorkerHandler) UpdateWorker(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAshaWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	worker, err := h.ashaUsecase.UpdateWorker(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		switch err {
		case usecase.ErrAshaWorkerNotFound:
			response.NotFound(w, "ASHA worker not found")
		default:
			response.InternalServerError(w, "Failed to update ASHA worker")
		}
		return
	}
	response.JSON(w, http.StatusOK, worker)
}

func (h *AshaWorkerHandler) DeleteWorker(w http.ResponseWriter, r *http.Request) {
	if err := h.ashaUsecase.DeleteWorker(r.Context(), mux.Vars(r)["id"]); err != nil {
		switch err {
		case usecase.ErrAshaWorkerNotFound:
			response.NotFound(w, "ASHA worker not found")
		default:
			response.InternalServerError(w, "Failed to delete ASHA worker")
		}
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *AshaWorkerHandler) SuspendWorker(w http.ResponseWriter, r *http.Request) {
	var req dto.SuspendAshaRequest
	if r.Body != nil {
		// The suspension reason is optional on the wire; an empty body is fine.
		json.NewDecoder(r.Body).Decode(&req)
	}

	worker, err := h.ashaUsecase.SuspendWorker(r.Context(), mux.Vars(r)["ashaId"], &req)
	if err != nil {
		switch err {
		case usecase.ErrAshaWorkerNotFound:
			response.NotFound(w, "ASHA worker not found")
		default:
			response.InternalServerError(w, "Failed to suspend ASHA worker")
		}
		return
	}
	response.JSON(w, http.StatusOK, worker)
}

func (h *AshaWorkerHandler) ReactivateWorker(w http.ResponseWriter, r *http.Request) {
	worker, err := h.ashaUsecase.ReactivateWorker(r.Context(), mux.Vars(r)["ashaId"])
	if err != nil {
		switch err {
		case usecase.ErrAshaWorkerNotFound:
			response.NotFound(w, "ASHA worker not found")
		default:
			response.InternalServerError(w, "Failed to reactivate ASHA worker")
		}
		return
	}
	response.JSON(w, http.StatusOK, worker)
}
