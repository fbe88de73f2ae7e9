// Package domain contains the core business entities and rules for the fare
// aggregation system. These entities are source-agnostic and form the
// foundation upon which all other components are built.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// FareRecord represents a single priced one-way itinerary option for a
// destination and date. Records live only for the duration of one
// aggregation run and are never persisted.
type FareRecord struct {
	// DestinationCode is the IATA code of the arrival airport (e.g., "BCN")
	DestinationCode string `json:"destination_code"`

	// DestinationLabel is the human-readable destination name. It is not
	// returned by the upstream; the engine attaches it from the catalog
	// after the lookup resolves.
	DestinationLabel string `json:"destination_label,omitempty"`

	// Price is the fare amount. Always non-negative.
	Price float64 `json:"price"`

	// Currency is the ISO 4217 currency code of Price.
	Currency string `json:"currency"`

	// DepartureTime is the upstream departure timestamp as received.
	// It is an ISO 8601 string and may be date-only or carry a time
	// component, with or without a timezone offset.
	DepartureTime string `json:"departure_time"`

	// BookingLink is a deep link to book this fare. It is derived purely
	// from origin, destination, and the date portion of DepartureTime.
	BookingLink string `json:"booking_link"`
}

// departureTimeLayouts are the accepted upstream timestamp formats, tried
// in order.
var departureTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// DepartureDate returns the calendar date of the record's departure,
// truncated to midnight UTC. It fails if DepartureTime is not parseable
// as any supported ISO 8601 variant.
func (r *FareRecord) DepartureDate() (time.Time, error) {
	for _, layout := range departureTimeLayouts {
		if t, err := time.Parse(layout, r.DepartureTime); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable departure time %q", ErrInvalidRecord, r.DepartureTime)
}

// Validate checks the record invariants: a destination code is present,
// the price is non-negative, and the departure timestamp parses as a
// calendar date.
func (r *FareRecord) Validate() error {
	if strings.TrimSpace(r.DestinationCode) == "" {
		return fmt.Errorf("%w: destination code is required", ErrInvalidRecord)
	}
	if r.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative, got %v", ErrInvalidRecord, r.Price)
	}
	if _, err := r.DepartureDate(); err != nil {
		return err
	}
	return nil
}

// AggregationResult is the ordered outcome of one aggregation run: at most
// one record per group key, sorted ascending by price with ties kept in
// discovery order.
type AggregationResult struct {
	// Origin is the IATA code the search fanned out from.
	Origin string `json:"origin"`

	// Records is the ranked list of group-minimum fares.
	Records []FareRecord `json:"records"`

	// Metadata describes the run that produced the records.
	Metadata RunMetadata `json:"metadata"`
}

// RunMetadata carries execution details of a single aggregation run.
type RunMetadata struct {
	// ItemsScheduled is the number of work items the engine fanned out.
	ItemsScheduled int `json:"items_scheduled"`

	// ItemsExhausted is the number of work items that yielded nothing
	// after all retry attempts.
	ItemsExhausted int `json:"items_exhausted"`

	// RecordsFetched is the raw record count before reduction.
	RecordsFetched int `json:"records_fetched"`

	// SearchTimeMs is the total run duration in milliseconds.
	SearchTimeMs int64 `json:"search_time_ms"`
}

// NewAggregationResult builds a result, normalising a nil record slice to
// an empty one so callers always marshal a JSON array.
func NewAggregationResult(origin string, records []FareRecord, meta RunMetadata) *AggregationResult {
	if records == nil {
		records = []FareRecord{}
	}
	return &AggregationResult{
		Origin:   origin,
		Records:  records,
		Metadata: meta,
	}
}
