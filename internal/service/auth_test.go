package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/security"
)

func newTestTokenManager() security.TokenManager {
	return security.NewTokenManager("test-secret-at-least-32-characters!!", 15, 60)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Registers with hashed password and default role", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 7
		}).Return(nil)
		svc := NewAuthService(users, newTestTokenManager())

		user, access, refresh, err := svc.Register(ctx, "Alice", "alice@example.com", "555-1234", "hunter22", "")
		assert.NoError(t, err)
		assert.Equal(t, domain.UserRoleUser, user.Role)
		assert.NotEqual(t, "hunter22", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("Rejects unknown role", func(t *testing.T) {
		users := new(MockUserRepository)
		svc := NewAuthService(users, newTestTokenManager())

		_, _, _, err := svc.Register(ctx, "Alice", "alice@example.com", "", "hunter22", "superuser")
		assert.ErrorIs(t, err, domain.ErrValidation)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Rejects missing required fields", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepository), newTestTokenManager())
		_, _, _, err := svc.Register(ctx, "", "alice@example.com", "", "hunter22", "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Duplicate email surfaces", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(domain.ErrEmailTaken)
		svc := NewAuthService(users, newTestTokenManager())

		_, _, _, err := svc.Register(ctx, "Alice", "alice@example.com", "", "hunter22", "")
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	stored := &domain.User{ID: 7, Email: "alice@example.com", PasswordHash: string(hash), Role: domain.UserRoleUser}

	t.Run("Valid credentials return tokens", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetByEmail", ctx, "alice@example.com").Return(stored, nil)
		svc := NewAuthService(users, newTestTokenManager())

		user, access, refresh, err := svc.Login(ctx, "alice@example.com", "hunter22")
		assert.NoError(t, err)
		assert.Equal(t, int32(7), user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("Wrong password yields invalid credentials", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetByEmail", ctx, "alice@example.com").Return(stored, nil)
		svc := NewAuthService(users, newTestTokenManager())

		_, _, _, err := svc.Login(ctx, "alice@example.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Unknown email yields the same error as a wrong password", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domain.ErrNotFound)
		svc := NewAuthService(users, newTestTokenManager())

		_, _, _, err := svc.Login(ctx, "nobody@example.com", "hunter22")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	tokens := newTestTokenManager()
	stored := &domain.User{ID: 7, Email: "alice@example.com", Role: domain.UserRoleUser}

	t.Run("Refresh token rotates into a new pair", func(t *testing.T) {
		refresh, err := tokens.GenerateRefreshToken(7, "alice@example.com")
		assert.NoError(t, err)

		users := new(MockUserRepository)
		users.On("GetByID", ctx, int32(7)).Return(stored, nil)
		svc := NewAuthService(users, tokens)

		access, newRefresh, err := svc.Refresh(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("Access token is rejected for refresh", func(t *testing.T) {
		access, err := tokens.GenerateAccessToken(7, "alice@example.com", "user")
		assert.NoError(t, err)

		svc := NewAuthService(new(MockUserRepository), tokens)
		_, _, err = svc.Refresh(ctx, access)
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})

	t.Run("Deleted user cannot refresh", func(t *testing.T) {
		refresh, err := tokens.GenerateRefreshToken(7, "alice@example.com")
		assert.NoError(t, err)

		users := new(MockUserRepository)
		users.On("GetByID", ctx, int32(7)).Return(nil, domain.ErrNotFound)
		svc := NewAuthService(users, tokens)

		_, _, err = svc.Refresh(ctx, refresh)
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})
}
