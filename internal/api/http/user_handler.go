package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/service"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

type updateProfileRequest struct {
	Name     string `json:"name"`
	Tel      string `json:"tel"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	principal := PrincipalFromContext(r.Context())

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}

	// Email and password changes go through the auth flow, never this route.
	if req.Email != "" || req.Password != "" {
		writeError(w, domain.ErrProtectedField)
		return
	}

	user, err := h.userSvc.UpdateProfile(r.Context(), principal.ID, req.Name, req.Tel)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
