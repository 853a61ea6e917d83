package service

import (
	"fmt"

	"car-rental-backend/internal/domain"
)

// MaxRentalsPerUser caps how many rentals a non-admin may hold. The count is
// evaluated against existing rentals before insertion, not including the one
// being created.
const MaxRentalsPerUser = 3

// Decision is the result of an admission check.
type Decision struct {
	Allowed bool
	Reason  string
}

func admit() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// CanCreateRental decides whether a principal may create another rental.
// Admins are exempt from the quota entirely.
func CanCreateRental(principal *domain.User, existingRentals int32) Decision {
	if principal.IsAdmin() {
		return admit()
	}
	if existingRentals >= MaxRentalsPerUser {
		return deny(fmt.Sprintf("user %d already holds %d rentals", principal.ID, existingRentals))
	}
	return admit()
}

// CanModifyRental decides whether a principal may update or delete a rental.
// The check is identical for both operations: owner or admin.
func CanModifyRental(principal *domain.User, rental *domain.Rental) Decision {
	if principal.ID == rental.UserID || principal.IsAdmin() {
		return admit()
	}
	return deny(fmt.Sprintf("user %d does not own rental %d", principal.ID, rental.ID))
}
