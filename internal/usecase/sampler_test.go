package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farescout/fare-aggregation-service/internal/domain"
)

// mustHorizon builds a horizon from date strings, failing the test on
// bad input.
func mustHorizon(t *testing.T, from, to string) domain.SearchHorizon {
	t.Helper()
	h, err := domain.NewSearchHorizon(from, to)
	require.NoError(t, err)
	return h
}

// TestSampleDates_SingleDay tests that a zero-length horizon yields
// exactly one sample.
func TestSampleDates_SingleDay(t *testing.T) {
	h := mustHorizon(t, "2024-06-01", "2024-06-01")

	samples := SampleDates(h)

	require.Len(t, samples, 1)
	assert.True(t, samples[0].Equal(h.From))
}

// TestSampleDates_ShortHorizonDaily tests that horizons up to ten days
// are sampled every day.
func TestSampleDates_ShortHorizonDaily(t *testing.T) {
	h := mustHorizon(t, "2024-06-01", "2024-06-11") // 10 days

	samples := SampleDates(h)

	require.Len(t, samples, 11)
	for i := 1; i < len(samples); i++ {
		assert.Equal(t, 24*time.Hour, samples[i].Sub(samples[i-1]))
	}
}

// TestSampleDates_MediumHorizonStepsThree tests the three-day stride for
// horizons between eleven and forty-five days.
func TestSampleDates_MediumHorizonStepsThree(t *testing.T) {
	h := mustHorizon(t, "2024-06-01", "2024-06-12") // 11 days

	samples := SampleDates(h)

	// 1st, 4th, 7th, 10th, then the terminal 12th.
	require.Len(t, samples, 5)
	assert.Equal(t, "2024-06-04", samples[1].Format(domain.DateLayout))
	assert.Equal(t, "2024-06-10", samples[3].Format(domain.DateLayout))
	assert.True(t, samples[len(samples)-1].Equal(h.To))
}

// TestSampleDates_LongHorizonStepsFive tests the five-day stride past
// forty-five days.
func TestSampleDates_LongHorizonStepsFive(t *testing.T) {
	h := mustHorizon(t, "2024-06-01", "2024-07-17") // 46 days

	samples := SampleDates(h)

	assert.Equal(t, 5*24*time.Hour, samples[1].Sub(samples[0]))
	assert.True(t, samples[len(samples)-1].Equal(h.To))
}

// TestSampleDates_TerminalIncluded tests that the horizon end is always
// a sample even when the stride overshoots it.
func TestSampleDates_TerminalIncluded(t *testing.T) {
	for _, tt := range []struct {
		name     string
		from, to string
	}{
		{name: "stride lands exactly", from: "2024-06-01", to: "2024-06-13"},
		{name: "stride overshoots", from: "2024-06-01", to: "2024-06-12"},
		{name: "long horizon overshoot", from: "2024-06-01", to: "2024-07-18"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			h := mustHorizon(t, tt.from, tt.to)

			samples := SampleDates(h)

			assert.True(t, samples[0].Equal(h.From))
			assert.True(t, samples[len(samples)-1].Equal(h.To))
		})
	}
}

// TestSampleDates_Deterministic tests that the sample sequence is a pure
// function of the horizon.
func TestSampleDates_Deterministic(t *testing.T) {
	h := mustHorizon(t, "2024-06-01", "2024-07-15")

	first := SampleDates(h)
	second := SampleDates(h)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, first[i].Equal(second[i]))
	}
}

// TestSampleDates_SubLinearGrowth tests that coarser strides keep the
// sample count well under the day count for long horizons.
func TestSampleDates_SubLinearGrowth(t *testing.T) {
	h := mustHorizon(t, "2024-06-01", "2024-08-30") // 90 days

	samples := SampleDates(h)

	assert.Less(t, len(samples), 25)
	assert.Greater(t, len(samples), 1)
}

// TestStepForHorizon tests the tier boundaries.
func TestStepForHorizon(t *testing.T) {
	tests := []struct {
		days int
		want int
	}{
		{days: 0, want: 1},
		{days: 10, want: 1},
		{days: 11, want: 3},
		{days: 45, want: 3},
		{days: 46, want: 5},
		{days: 365, want: 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, stepForHorizon(tt.days), "days=%d", tt.days)
	}
}
