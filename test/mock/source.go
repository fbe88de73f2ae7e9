// Package mock provides test doubles for the fare aggregation system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, failure scripts, per-route fares).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/farescout/fare-aggregation-service/internal/domain"
)

// Source is a configurable mock implementation of domain.FareSource.
// It supports configurable delays, scripted failures, and per-route
// responses for testing retries, partial failures, and cancellation.
type Source struct {
	name       string
	records    []domain.FareRecord
	routeFares map[string][]domain.FareRecord
	routeErrs  map[string]error
	err        error
	errScript  []error
	delay      time.Duration
	callCount  int
	mu         sync.Mutex
}

// NewSource creates a new mock fare source with the given name.
// The source is configured using the builder pattern methods.
func NewSource(name string) *Source {
	return &Source{
		name:       name,
		routeFares: make(map[string][]domain.FareRecord),
		routeErrs:  make(map[string]error),
	}
}

// WithRecords configures the source to return the given records for
// every query without per-route fares.
func (s *Source) WithRecords(records []domain.FareRecord) *Source {
	s.records = records
	return s
}

// WithRouteFares configures the records returned for one destination.
// Per-route fares take precedence over WithRecords.
func (s *Source) WithRouteFares(destination string, records []domain.FareRecord) *Source {
	s.routeFares[destination] = records
	return s
}

// WithRouteError configures every call for one destination to fail with
// the given error. Per-route errors take precedence over per-route fares
// and are useful for partial-failure scenarios.
func (s *Source) WithRouteError(destination string, err error) *Source {
	s.routeErrs[destination] = err
	return s
}

// WithError configures the source to fail every call with the given
// error.
func (s *Source) WithError(err error) *Source {
	s.err = err
	return s
}

// WithErrorScript configures the outcome of the first len(script) calls:
// a non-nil entry fails that call, a nil entry succeeds. Calls past the
// end of the script succeed. Useful for fail-then-recover retry tests.
func (s *Source) WithErrorScript(script ...error) *Source {
	s.errScript = script
	return s
}

// WithDelay configures the source to wait the given duration before
// responding. This is useful for testing cancellation behavior.
func (s *Source) WithDelay(d time.Duration) *Source {
	s.delay = d
	return s
}

// Name returns the source's unique identifier.
func (s *Source) Name() string {
	return s.name
}

// Fetch implements domain.FareSource.Fetch.
// It respects context cancellation, applies the configured delay, then
// consults the failure script, the fixed error, and the per-route fares
// in that order.
func (s *Source) Fetch(ctx context.Context, query domain.FareQuery) ([]domain.FareRecord, error) {
	s.mu.Lock()
	call := s.callCount
	s.callCount++
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if call < len(s.errScript) && s.errScript[call] != nil {
		return nil, s.errScript[call]
	}

	if err, ok := s.routeErrs[query.Destination]; ok {
		return nil, err
	}

	if s.err != nil {
		return nil, s.err
	}

	if records, ok := s.routeFares[query.Destination]; ok {
		return records, nil
	}
	return s.records, nil
}

// CallCount returns the number of times Fetch was called.
// This is useful for verifying retry behavior.
func (s *Source) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// Reset resets the call count to zero.
func (s *Source) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount = 0
}

// Ensure Source implements domain.FareSource at compile time.
var _ domain.FareSource = (*Source)(nil)

// SampleRecords returns count fare records for one destination with
// ascending prices starting at basePrice. All required fields carry
// realistic values.
func SampleRecords(destination string, basePrice float64, count int) []domain.FareRecord {
	records := make([]domain.FareRecord, count)

	baseDate := time.Date(2024, 6, 3, 6, 30, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		departure := baseDate.AddDate(0, 0, i)
		records[i] = domain.FareRecord{
			DestinationCode: destination,
			Price:           basePrice + float64(i)*5,
			Currency:        "EUR",
			DepartureTime:   departure.Format("2006-01-02T15:04:05"),
			BookingLink:     "https://www.ryanair.com/ua/uk/trip/flights/select?originIata=BER&destinationIata=" + destination,
		}
	}

	return records
}
