package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRealClock_Now verifies the real clock tracks system time.
func TestRealClock_Now(t *testing.T) {
	clock := NewRealClock()
	before := time.Now()
	got := clock.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

// TestMockClock verifies fixed time, Set, and Advance behavior.
func TestMockClock(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := NewMockClock(fixed)

	assert.Equal(t, fixed, clock.Now())

	clock.Advance(30 * time.Minute)
	assert.Equal(t, fixed.Add(30*time.Minute), clock.Now())

	clock.AdvanceDays(2)
	assert.Equal(t, fixed.Add(30*time.Minute).AddDate(0, 0, 2), clock.Now())

	other := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock.Set(other)
	assert.Equal(t, other, clock.Now())
}

// TestNewMockClockFromString verifies RFC3339 parsing and the panic on
// invalid input.
func TestNewMockClockFromString(t *testing.T) {
	clock := NewMockClockFromString("2024-06-01T08:00:00Z")
	assert.Equal(t, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC), clock.Now())

	assert.Panics(t, func() {
		NewMockClockFromString("not a time")
	})
}

// TestParseDate_Alt verifies date parsing and error reporting.
func TestParseDate_Alt(t *testing.T) {
	got, err := ParseDate("2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("03/06/2024")
	assert.Error(t, err)
}

// TestFormatDate_Alt verifies round-tripping through the date layout.
func TestFormatDate_Alt(t *testing.T) {
	d := time.Date(2024, 6, 3, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-03", FormatDate(d))
}

// TestMidnight_Alt verifies truncation to the calendar day.
func TestMidnight_Alt(t *testing.T) {
	d := time.Date(2024, 6, 3, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), Midnight(d))
}

// TestDaysBetween_Alt verifies whole-day arithmetic in both directions.
func TestDaysBetween_Alt(t *testing.T) {
	from := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 10, 2, 0, 0, 0, time.UTC)

	assert.Equal(t, 9, DaysBetween(from, to))
	assert.Equal(t, -9, DaysBetween(to, from))
	assert.Equal(t, 0, DaysBetween(from, from))
}

// TestAddDays_Alt verifies month boundaries are handled.
func TestAddDays_Alt(t *testing.T) {
	d := time.Date(2024, 6, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC), AddDays(d, 3))
}
