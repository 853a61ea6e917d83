package service

import (
	"context"
	"fmt"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/repository"
)

type carService struct {
	carRepo    repository.CarRepository
	rentalRepo repository.RentalRepository
}

func NewCarService(carRepo repository.CarRepository, rentalRepo repository.RentalRepository) CarService {
	return &carService{
		carRepo:    carRepo,
		rentalRepo: rentalRepo,
	}
}

func (s *carService) ListCars(ctx context.Context, page, pageSize int32) ([]domain.Car, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 25
	}
	return s.carRepo.List(ctx, page, pageSize)
}

func (s *carService) GetCar(ctx context.Context, id int32) (*domain.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

func (s *carService) CreateCar(ctx context.Context, car *domain.Car) error {
	if err := validateCar(car); err != nil {
		return err
	}
	return s.carRepo.Create(ctx, car)
}

func (s *carService) UpdateCar(ctx context.Context, car *domain.Car) error {
	if err := validateCar(car); err != nil {
		return err
	}
	return s.carRepo.Update(ctx, car)
}

// DeleteCar removes a car and every rental referencing it. Rentals go first;
// if that fails the car row is left untouched so no rental ends up orphaned.
func (s *carService) DeleteCar(ctx context.Context, id int32) error {
	if _, err := s.carRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.rentalRepo.DeleteByCar(ctx, id); err != nil {
		return fmt.Errorf("failed to delete rentals for car %d: %w", id, err)
	}

	if err := s.carRepo.Delete(ctx, id); err != nil {
		logger.Error("Car delete failed after rentals were removed", "car_id", id, "error", err)
		return err
	}
	return nil
}

func validateCar(car *domain.Car) error {
	if car.Name == "" || car.Model == "" {
		return fmt.Errorf("%w: name and model are required", domain.ErrValidation)
	}
	if car.PricePerDay < 0 {
		return fmt.Errorf("%w: price per day must not be negative", domain.ErrValidation)
	}
	if car.Rating != 0 && (car.Rating < 1 || car.Rating > 5) {
		return fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}
	return nil
}
