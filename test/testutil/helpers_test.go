package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustParseDate(t *testing.T) {
	parsed := MustParseDate(t, "2024-06-01")
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, "June", parsed.Month().String())
	assert.Equal(t, 1, parsed.Day())
}

func TestMustParseTime(t *testing.T) {
	parsed := MustParseTime(t, "2024-06-01T06:30:00Z")
	assert.Equal(t, 6, parsed.Hour())
	assert.Equal(t, 30, parsed.Minute())
}

func TestMustHorizon(t *testing.T) {
	h := MustHorizon(t, "2024-06-01", "2024-06-10")
	assert.Equal(t, 9, h.Days())
}

func TestRecord(t *testing.T) {
	r := Record("BCN", 19.99, "2024-06-03")
	assert.Equal(t, "BCN", r.DestinationCode)
	assert.Equal(t, 19.99, r.Price)
	assert.Equal(t, "EUR", r.Currency)
	assert.NoError(t, r.Validate())
}

func TestPtr(t *testing.T) {
	v := Ptr(42)
	assert.Equal(t, 42, *v)
}
