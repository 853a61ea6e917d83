package domain

type CarTier string

const (
	CarTierBronze   CarTier = "Bronze"
	CarTierSilver   CarTier = "Silver"
	CarTierGold     CarTier = "Gold"
	CarTierPlatinum CarTier = "Platinum"
	CarTierDiamond  CarTier = "Diamond"
)

type Car struct {
	ID          int32   `json:"id"`
	Name        string  `json:"name"`
	Model       string  `json:"model"`
	Tel         string  `json:"tel"`
	PricePerDay float64 `json:"price_per_day"`
	// DemandFactor is the last multiplier computed by the nightly price
	// refresh. Informational only; bookings always price from PricePerDay.
	DemandFactor float64 `json:"demand_factor"`
	Picture      string  `json:"picture"`
	Rating       float64 `json:"rating"`
	Tier         CarTier `json:"tier"`
	LastUpdated  string  `json:"last_updated"`
	CreatedOn    string  `json:"created_on"`
}
