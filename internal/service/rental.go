package service

import (
	"context"
	"fmt"
	"time"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
	"car-rental-backend/internal/utils"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	carRepo    repository.CarRepository
}

func NewRentalService(rentalRepo repository.RentalRepository, carRepo repository.CarRepository) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		carRepo:    carRepo,
	}
}

func (s *rentalService) ListRentals(ctx context.Context, principal *domain.User, carID int32) ([]domain.Rental, error) {
	// General users see only their own rentals. Admins see everything,
	// optionally narrowed to one car.
	if !principal.IsAdmin() {
		return s.rentalRepo.ListByUser(ctx, principal.ID)
	}
	if carID != 0 {
		return s.rentalRepo.ListByCar(ctx, carID)
	}
	return s.rentalRepo.List(ctx)
}

func (s *rentalService) GetRental(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, rentalID)
}

func (s *rentalService) CreateRental(ctx context.Context, principal *domain.User, carID int32, in RentalInput) (*domain.Rental, error) {
	pickup, ret, err := parseDateRange(in)
	if err != nil {
		return nil, err
	}

	// Quota is evaluated against existing rentals before insertion. Two
	// concurrent creations can both pass this check; that race is accepted.
	existing, err := s.rentalRepo.CountByUser(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	if d := CanCreateRental(principal, existing); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuotaExceeded, d.Reason)
	}

	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}

	rental := &domain.Rental{
		CarID:          car.ID,
		UserID:         principal.ID,
		PickupDate:     pickup,
		ReturnDate:     ret,
		PickupLocation: in.PickupLocation,
		ReturnLocation: in.ReturnLocation,
		AssumedPrice:   utils.RangePrice(pickup, ret, car.PricePerDay),
	}

	// Overlapping rentals for the same car are deliberately not rejected.

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) UpdateRental(ctx context.Context, principal *domain.User, rentalID int32, in RentalInput) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	if d := CanModifyRental(principal, rental); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotAuthorized, d.Reason)
	}

	pickup, ret, err := parseDateRange(in)
	if err != nil {
		return nil, err
	}

	car, err := s.carRepo.GetByID(ctx, rental.CarID)
	if err != nil {
		return nil, err
	}

	rental.PickupDate = pickup
	rental.ReturnDate = ret
	if in.PickupLocation != "" {
		rental.PickupLocation = in.PickupLocation
	}
	if in.ReturnLocation != "" {
		rental.ReturnLocation = in.ReturnLocation
	}
	// Date mutations invalidate the price snapshot; recompute it here.
	rental.AssumedPrice = utils.RangePrice(pickup, ret, car.PricePerDay)

	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) DeleteRental(ctx context.Context, principal *domain.User, rentalID int32) error {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return err
	}

	if d := CanModifyRental(principal, rental); !d.Allowed {
		return fmt.Errorf("%w: %s", domain.ErrNotAuthorized, d.Reason)
	}

	return s.rentalRepo.Delete(ctx, rentalID)
}

func parseDateRange(in RentalInput) (time.Time, time.Time, error) {
	if in.PickupDate == "" || in.ReturnDate == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: pickup and return dates are required", domain.ErrValidation)
	}
	pickup, err := time.Parse("2006-01-02", in.PickupDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid pickup date %q", domain.ErrValidation, in.PickupDate)
	}
	ret, err := time.Parse("2006-01-02", in.ReturnDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid return date %q", domain.ErrValidation, in.ReturnDate)
	}
	if ret.Before(pickup) {
		return time.Time{}, time.Time{}, domain.ErrInvalidDateRange
	}
	return pickup, ret, nil
}
