package domain

import "errors"

// Error kinds surfaced by the services. Handlers map these to HTTP status
// codes with errors.Is; anything else is treated as a dependency failure.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidDateRange   = errors.New("return date must not be before pickup date")
	ErrQuotaExceeded      = errors.New("rental quota exceeded")
	ErrNotAuthorized      = errors.New("not authorized for this rental")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrProtectedField     = errors.New("email and password cannot be updated from this route")
)
