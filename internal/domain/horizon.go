package domain

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the calendar-date format used across the system.
const DateLayout = "2006-01-02"

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// SearchHorizon is the inclusive (from, to) calendar-date window an
// aggregation run searches over. It drives the date sampler.
type SearchHorizon struct {
	From time.Time
	To   time.Time
}

// NewSearchHorizon parses and validates a horizon from YYYY-MM-DD strings.
// From must not be after To.
func NewSearchHorizon(from, to string) (SearchHorizon, error) {
	f, err := time.Parse(DateLayout, from)
	if err != nil {
		return SearchHorizon{}, fmt.Errorf("%w: date_from must be a valid YYYY-MM-DD date, got %q", ErrInvalidRequest, from)
	}
	t, err := time.Parse(DateLayout, to)
	if err != nil {
		return SearchHorizon{}, fmt.Errorf("%w: date_to must be a valid YYYY-MM-DD date, got %q", ErrInvalidRequest, to)
	}
	if t.Before(f) {
		return SearchHorizon{}, fmt.Errorf("%w: date_to %s is before date_from %s", ErrInvalidRequest, to, from)
	}
	return SearchHorizon{From: f, To: t}, nil
}

// Days returns the horizon length in whole days. A single-day horizon
// (From == To) has length zero.
func (h SearchHorizon) Days() int {
	return int(h.To.Sub(h.From).Hours() / 24)
}

// Contains reports whether date falls inside the horizon, widened by
// slack days on each side. The upstream flexible-window search can return
// dates just outside the requested range, so callers filter with slack
// rather than exactly.
func (h SearchHorizon) Contains(date time.Time, slackDays int) bool {
	lo := h.From.AddDate(0, 0, -slackDays)
	hi := h.To.AddDate(0, 0, slackDays)
	return !date.Before(lo) && !date.After(hi)
}

// ValidateAirportCode checks an origin or destination location code.
func ValidateAirportCode(field, code string) error {
	if code == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidRequest, field)
	}
	if !airportCodeRegex.MatchString(code) {
		return fmt.Errorf("%w: %s must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, field, code)
	}
	return nil
}
