package utils

import (
	"math"
	"time"
)

// RangeDays returns the inclusive number of billable days between pickup and
// return: a same-day pickup/return is 1 day, each additional calendar day
// adds one. Fractional-day differences truncate before the +1. An inverted
// range yields a zero or negative count; the raw value is returned without
// clamping so callers can detect invalid ranges themselves.
func RangeDays(pickupDate, returnDate time.Time) int32 {
	days := math.Floor(returnDate.Sub(pickupDate).Hours() / 24)
	return int32(days) + 1
}

// RangePrice computes the total for a date range at the car's daily rate.
// Used for user-facing bookings; the demand factor deliberately does not
// apply here (see PricingService.CalculateRentalPrice for the other path).
func RangePrice(pickupDate, returnDate time.Time, pricePerDay float64) float64 {
	return float64(RangeDays(pickupDate, returnDate)) * pricePerDay
}
