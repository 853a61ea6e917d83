package service

import (
	"context"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// UpdateProfile changes the mutable profile fields. Email and password are
// protected and handled by the auth flow only.
func (s *userService) UpdateProfile(ctx context.Context, userID int32, name, tel string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if tel != "" {
		user.Tel = tel
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
