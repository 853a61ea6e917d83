package repository

import (
	"context"

	"car-rental-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id int32) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Car, int32, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Rental, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Rental, error)
	ListByCar(ctx context.Context, carID int32) ([]domain.Rental, error)
	// CountByCar returns the all-time number of rentals recorded against a
	// car, including past ones. It feeds the demand estimator.
	CountByCar(ctx context.Context, carID int32) (int32, error)
	CountByUser(ctx context.Context, userID int32) (int32, error)
	DeleteByCar(ctx context.Context, carID int32) error
}
