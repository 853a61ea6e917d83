package jobs

import (
	"context"

	"car-rental-backend/internal/logger"
)

// RefreshRentalPrices recomputes every rental's price snapshot at the
// demand-adjusted single-day rate for its pickup date. Rentals are walked
// sequentially; a refresh racing a user update is last-write-wins.
func (jr *JobRunner) RefreshRentalPrices() {
	jr.runWithRecovery("RefreshRentalPrices", func() {
		ctx := context.Background()

		rentals, err := jr.store.RentalRepository.List(ctx)
		if err != nil {
			logger.Error("Failed to list rentals for price refresh", "error", err)
			return
		}

		count := 0
		for i := range rentals {
			rental := &rentals[i]

			car, err := jr.store.CarRepository.GetByID(ctx, rental.CarID)
			if err != nil {
				// Rental without a resolvable car is skipped, not fatal.
				logger.Warn("Skipping rental with missing car", "rental_id", rental.ID, "car_id", rental.CarID)
				continue
			}

			price, err := jr.services.Pricing.CalculateRentalPrice(ctx, car, rental.PickupDate)
			if err != nil {
				logger.Error("Failed to price rental", "rental_id", rental.ID, "error", err)
				continue
			}

			rental.AssumedPrice = price
			if err := jr.store.RentalRepository.Update(ctx, rental); err != nil {
				logger.Error("Failed to save refreshed price", "rental_id", rental.ID, "error", err)
				continue
			}

			count++
			logger.Debug("Refreshed rental price", "rental_id", rental.ID, "price", price)
		}

		logger.Info("Rental prices updated", "count", count, "total", len(rentals))
	})
}
