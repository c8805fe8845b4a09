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

type ReviewHandler struct {
	reviewUsecase usecase.ReviewUsecase
	validator     *validator.CustomValidator
}

func NewReviewHandler(reviewUsecase usecase.ReviewUsecase, validator *validator.CustomValidator) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: reviewUsecase,
		validator:     validator,
	}
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	review, err := h.reviewUsecase.CreateReview(r.Context(), mux.Vars(r)["ashaId"], &req)
	if err != nil {
		switch err {
		case usecase.ErrAshaWorkerNotFound:
			response.NotFound(w, "ASHA worker not found")
		default:
			response.InternalServerError(w, "Failed to create review")
		}
		return
	}
	response.JSON(w, http.StatusCreated, review)
}

func (h *ReviewHandler) GetReviewsByAsha(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewUsecase.GetReviewsByAsha(r.Context(), mux.Vars(r)["ashaId"])
	if err != nil {
		response.InternalServerError(w, "Failed to get reviews")
		return
	}
	response.JSON(w, http.StatusOK, reviews)
}
