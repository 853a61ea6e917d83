package service

import (
	"context"
	"time"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/holiday"
	"car-rental-backend/internal/repository"
)

// Demand factor bonuses. All three are independent and may stack, so the
// factor ranges from 1.0 to 2.0.
const (
	demandBaseline    = 1.0
	highSeasonBonus   = 0.5
	weekendBonus      = 0.2
	popularCarBonus   = 0.3
	popularCarRentals = 5 // strictly more than this many rentals on record
)

type demandEstimator struct {
	rentalRepo repository.RentalRepository
	oracle     holiday.Oracle
}

func NewDemandEstimator(rentalRepo repository.RentalRepository, oracle holiday.Oracle) DemandEstimator {
	return &demandEstimator{
		rentalRepo: rentalRepo,
		oracle:     oracle,
	}
}

func (e *demandEstimator) Estimate(ctx context.Context, carID int32, date time.Time) (float64, error) {
	// All-time rental count, including completed ones. Not limited to
	// currently active rentals.
	count, err := e.rentalRepo.CountByCar(ctx, carID)
	if err != nil {
		return 0, err
	}

	factor := demandBaseline

	if e.oracle.IsHighSeason(ctx, date) {
		factor += highSeasonBonus
	}

	// Friday or Saturday under a Sunday-is-0 week.
	if wd := date.Weekday(); wd == time.Friday || wd == time.Saturday {
		factor += weekendBonus
	}

	if count > popularCarRentals {
		factor += popularCarBonus
	}

	return factor, nil
}

type pricingService struct {
	estimator DemandEstimator
}

func NewPricingService(estimator DemandEstimator) PricingService {
	return &pricingService{estimator: estimator}
}

// CalculateRentalPrice prices a single day at the demand-adjusted rate. The
// length of the rental's date range does not enter this formula.
func (s *pricingService) CalculateRentalPrice(ctx context.Context, car *domain.Car, date time.Time) (float64, error) {
	factor, err := s.estimator.Estimate(ctx, car.ID, date)
	if err != nil {
		return 0, err
	}
	return car.PricePerDay * factor, nil
}
