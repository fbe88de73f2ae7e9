package domain

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -source=source.go -destination=source_mock.go -package=domain

// FareQuery is one upstream fare lookup request: a route plus a departure
// date window.
type FareQuery struct {
	// Origin is the IATA code of the departure airport.
	Origin string

	// Destination is the IATA code of the arrival airport.
	Destination string

	// DateFrom is the start of the departure window in YYYY-MM-DD format.
	DateFrom string

	// DateTo is the end of the departure window in YYYY-MM-DD format.
	// May be empty; the upstream then searches a default flexible window
	// around DateFrom.
	DateTo string
}

// Validate checks the query constraints: non-empty valid location codes
// and parseable dates with DateFrom <= DateTo when both are set.
func (q *FareQuery) Validate() error {
	if err := ValidateAirportCode("origin", q.Origin); err != nil {
		return err
	}
	if err := ValidateAirportCode("destination", q.Destination); err != nil {
		return err
	}
	if q.Origin == q.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}
	from, err := time.Parse(DateLayout, q.DateFrom)
	if err != nil {
		return fmt.Errorf("%w: date_from must be a valid YYYY-MM-DD date, got %q", ErrInvalidRequest, q.DateFrom)
	}
	if q.DateTo != "" {
		to, err := time.Parse(DateLayout, q.DateTo)
		if err != nil {
			return fmt.Errorf("%w: date_to must be a valid YYYY-MM-DD date, got %q", ErrInvalidRequest, q.DateTo)
		}
		if to.Before(from) {
			return fmt.Errorf("%w: date_to %s is before date_from %s", ErrInvalidRequest, q.DateTo, q.DateFrom)
		}
	}
	return nil
}

// FareSource is the port to an upstream fare search endpoint.
type FareSource interface {
	// Name returns the source's unique identifier for logging.
	Name() string

	// Fetch performs one fare lookup. On success it returns zero or more
	// fare records; a well-formed response with no fares is an empty
	// slice and a nil error. Any failure is reported as a *LookupError
	// so the retry policy can classify it.
	Fetch(ctx context.Context, query FareQuery) ([]FareRecord, error)
}
