package handler

import (
	"encoding/json"
	"net/http"

	"uhc-health-portal/internal/delivery/dto"
	"uhc-health-portal/internal/domain/entity"
	"uhc-health-portal/internal/usecase"
	"uhc-health-portal/pkg/response"
	"uhc-health-portal/pkg/validator"

	"github.com/gorilla/mux"
)

type MemberHandler struct {
	memberUsecase usecase.MemberUsecase
	validator     *validator.CustomValidator
}

func NewMemberHandler(memberUsecase usecase.MemberUsecase, validator *validator.CustomValidator) *MemberHandler {
	return &MemberHandler{
		memberUsecase: memberUsecase,
		validator:     validator,
	}
}

func (h *MemberHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	member, err := h.memberUsecase.CreateMember(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrHouseholdNotFound:
			response.NotFound(w, "Household not found")
		default:
			response.InternalServerError(w, "Failed to create member")
		}
		return
	}
	response.JSON(w, http.StatusCreated, member)
}

// GetMembersByWard never surfaces an error to the client; failures degrade to
// an empty list.
func (h *MemberHandler) GetMembersByWard(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberUsecase.GetMembersByWard(r.Context(), mux.Vars(r)["wardId"])
	if err != nil || members == nil {
		members = []entity.Member{}
	}
	response.JSON(w, http.StatusOK, members)
}

func (h *MemberHandler) GetMembersByHousehold(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberUsecase.GetMembersByHousehold(r.Context(), mux.Vars(r)["householdId"])
	if err != nil {
		response.InternalServerError(w, "Failed to get members")
		return
	}
	response.JSON(w, http.StatusOK, members)
}
