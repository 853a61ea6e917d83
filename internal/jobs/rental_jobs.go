package jobs

import (
	"context"
	"time"

	"car-rental-backend/internal/logger"
)

// SendRentalReminders emails every renter whose rental starts today.
func (jr *JobRunner) SendRentalReminders() {
	jr.runWithRecovery("SendRentalReminders", func() {
		ctx := context.Background()

		query := `
			SELECT r.id, r.pickup_date, u.email, u.name, c.name AS car_name
			FROM rentals r
			JOIN users u ON r.user_id = u.id
			JOIN cars c ON r.car_id = c.id
			WHERE r.pickup_date >= $1 AND r.pickup_date < $2
		`

		startOfDay := time.Now().UTC().Truncate(24 * time.Hour)
		endOfDay := startOfDay.Add(24 * time.Hour)

		rows, err := jr.db.QueryContext(ctx, query, startOfDay, endOfDay)
		if err != nil {
			logger.Error("Failed to query rentals starting today", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				rentalID   int32
				pickupDate time.Time
				email      string
				name       string
				carName    string
			)
			if err := rows.Scan(&rentalID, &pickupDate, &email, &name, &carName); err != nil {
				logger.Error("Failed to scan rental reminder row", "error", err)
				continue
			}
			if email == "" {
				continue
			}

			if err := jr.services.Email.SendRentalReminder(ctx, email, name, carName); err != nil {
				logger.Error("Failed to send rental reminder",
					"rental_id", rentalID,
					"email", email,
					"error", err)
				continue
			}

			count++
			logger.Debug("Sent rental reminder", "rental_id", rentalID, "email", email)
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating rental reminders", "error", err)
			return
		}

		logger.Info("Rental reminders sent", "count", count)
	})
}
