package http

import (
	"context"
	"net/http"
	"strings"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
	"car-rental-backend/internal/security"
)

type contextKey string

const principalKey contextKey = "principal"

// AuthMiddleware validates the bearer token and loads the principal from the
// database so role changes take effect immediately, not at token refresh.
type AuthMiddleware struct {
	tokens   security.TokenManager
	userRepo repository.UserRepository
}

func NewAuthMiddleware(tokens security.TokenManager, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

// Protect wraps a handler that requires an authenticated principal.
func (m *AuthMiddleware) Protect(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			writeError(w, security.ErrInvalidToken)
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			writeError(w, err)
			return
		}
		if claims.Type != security.TokenTypeAccess {
			writeError(w, security.ErrInvalidToken)
			return
		}

		user, err := m.userRepo.GetByID(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, security.ErrInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, user)
		next(w, r.WithContext(ctx))
	}
}

// RequireAdmin wraps a protected handler that only admins may call.
func (m *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.Protect(func(w http.ResponseWriter, r *http.Request) {
		principal := PrincipalFromContext(r.Context())
		if principal == nil || !principal.IsAdmin() {
			writeError(w, domain.ErrNotAuthorized)
			return
		}
		next(w, r)
	})
}

// PrincipalFromContext returns the authenticated user, or nil outside of a
// protected route.
func PrincipalFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(principalKey).(*domain.User)
	return user
}

func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	if len(header) > 7 && strings.EqualFold(header[0:7], "bearer ") {
		return header[7:]
	}
	return header
}
