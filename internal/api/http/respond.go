package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/security"
)

// response is the envelope every endpoint returns.
type response struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Total   *int32      `json:"total,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response{Success: true, Data: data}); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeList(w http.ResponseWriter, status int, count int, total int32, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response{Success: true, Count: &count, Total: &total, Data: data}); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain error kinds onto HTTP status codes. Anything
// unrecognized is treated as a dependency failure.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrQuotaExceeded),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrProtectedField):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotAuthorized):
		status = http.StatusForbidden
	}

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(response{Success: false, Message: err.Error()})
}
