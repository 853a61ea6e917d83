package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"car-rental-backend/internal/logger"
)

// Oracle answers whether a date counts as high season for pricing.
type Oracle interface {
	IsHighSeason(ctx context.Context, date time.Time) bool
}

type apiOracle struct {
	baseURL string
	apiKey  string
	country string
	client  *http.Client
}

// NewAPIOracle returns an Oracle backed by the external holiday calendar.
// Lookups that fail for any reason degrade to "not high season" instead of
// returning an error; pricing must keep working when the calendar is down.
func NewAPIOracle(baseURL, apiKey, country string) Oracle {
	return &apiOracle{
		baseURL: baseURL,
		apiKey:  apiKey,
		country: country,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type holidayEntry struct {
	Date string `json:"date"` // yyyy-mm-dd
	Name string `json:"name"`
}

func (o *apiOracle) IsHighSeason(ctx context.Context, date time.Time) bool {
	year, month, day := date.Date()

	reqURL := fmt.Sprintf("%s?country=%s&year=%d", o.baseURL, url.QueryEscape(o.country), year)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		logger.Error("Failed to build holiday calendar request", "error", err)
		return false
	}
	req.Header.Set("X-Api-Key", o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		logger.Error("Holiday calendar lookup failed", "error", err, "year", year)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("Holiday calendar returned non-OK status", "status", resp.StatusCode, "year", year)
		return false
	}

	var holidays []holidayEntry
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		logger.Error("Failed to decode holiday calendar response", "error", err)
		return false
	}

	for _, h := range holidays {
		hd, err := time.Parse("2006-01-02", h.Date)
		if err != nil {
			continue
		}
		hy, hm, hday := hd.Date()
		if hy == year && hm == month && hday == day {
			return true
		}
	}
	return false
}
