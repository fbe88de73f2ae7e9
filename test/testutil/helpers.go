// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"testing"
	"time"

	"github.com/farescout/fare-aggregation-service/internal/domain"
)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateLayout, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// MustHorizon builds a search horizon from YYYY-MM-DD strings.
// It fails the test if the horizon is invalid.
func MustHorizon(t *testing.T, from, to string) domain.SearchHorizon {
	t.Helper()
	h, err := domain.NewSearchHorizon(from, to)
	if err != nil {
		t.Fatalf("Failed to build horizon %s..%s: %v", from, to, err)
	}
	return h
}

// Record builds a fare record with the given destination, price, and
// departure timestamp. Convenience for table-driven tests.
func Record(destination string, price float64, departure string) domain.FareRecord {
	return domain.FareRecord{
		DestinationCode: destination,
		Price:           price,
		Currency:        "EUR",
		DepartureTime:   departure,
	}
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
