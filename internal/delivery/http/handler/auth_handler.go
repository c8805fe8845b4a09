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

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrWardRequired:
			response.BadRequest(w, "Ward selection is required for ASHA login")
		case usecase.ErrNotGovDomain:
			response.Forbidden(w, "Government login requires an official email domain")
		case usecase.ErrAshaNotRegistered:
			response.Forbidden(w, "No registered ASHA worker found for this email")
		default:
			response.InternalServerError(w, "Failed to log in")
		}
		return
	}

	response.JSON(w, http.StatusOK, result)
}

func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.NotFound(w, "User not found")
		return
	}

	user, err := h.authUsecase.GetUser(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to get user")
		}
		return
	}

	response.JSON(w, http.StatusOK, user)
}
