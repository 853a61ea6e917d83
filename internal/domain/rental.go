package domain

import "time"

type Rental struct {
	ID             int32     `json:"id"`
	CarID          int32     `json:"car_id"`
	UserID         int32     `json:"user_id"`
	PickupDate     time.Time `json:"pickup_date"`
	ReturnDate     time.Time `json:"return_date"`
	PickupLocation string    `json:"pickup_location"`
	ReturnLocation string    `json:"return_location"`
	// AssumedPrice is a point-in-time snapshot taken when the rental is
	// created or its dates change. Reads never recompute it; the nightly
	// refresh job may overwrite it with a demand-adjusted value.
	AssumedPrice float64 `json:"assumed_price"`
	CreatedOn    string  `json:"created_on"`
	UpdatedOn    string  `json:"updated_on"`
}
