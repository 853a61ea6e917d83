package service

import (
	"context"
	"time"

	"car-rental-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, tel, password string, role domain.UserRole) (*domain.User, string, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	GetMe(ctx context.Context, userID int32) (*domain.User, error)
}

type UserService interface {
	UpdateProfile(ctx context.Context, userID int32, name, tel string) (*domain.User, error)
}

type CarService interface {
	ListCars(ctx context.Context, page, pageSize int32) ([]domain.Car, int32, error)
	GetCar(ctx context.Context, id int32) (*domain.Car, error)
	CreateCar(ctx context.Context, car *domain.Car) error
	UpdateCar(ctx context.Context, car *domain.Car) error
	DeleteCar(ctx context.Context, id int32) error
}

// RentalInput carries the user-supplied fields of a rental. Dates arrive as
// yyyy-mm-dd strings and are validated by the service.
type RentalInput struct {
	PickupDate     string
	ReturnDate     string
	PickupLocation string
	ReturnLocation string
}

type RentalService interface {
	ListRentals(ctx context.Context, principal *domain.User, carID int32) ([]domain.Rental, error)
	GetRental(ctx context.Context, rentalID int32) (*domain.Rental, error)
	CreateRental(ctx context.Context, principal *domain.User, carID int32, in RentalInput) (*domain.Rental, error)
	UpdateRental(ctx context.Context, principal *domain.User, rentalID int32, in RentalInput) (*domain.Rental, error)
	DeleteRental(ctx context.Context, principal *domain.User, rentalID int32) error
}

// DemandEstimator computes the multiplicative demand factor for a car on a
// given date. The factor is always within [1.0, 2.0].
type DemandEstimator interface {
	Estimate(ctx context.Context, carID int32, date time.Time) (float64, error)
}

// PricingService implements the demand-adjusted single-day pricing path used
// by the nightly refresh job. It is intentionally separate from the
// date-range pricing applied to bookings; the two formulas are not unified.
type PricingService interface {
	CalculateRentalPrice(ctx context.Context, car *domain.Car, date time.Time) (float64, error)
}

type EmailService interface {
	SendRentalReminder(ctx context.Context, email, name, carName string) error
}
