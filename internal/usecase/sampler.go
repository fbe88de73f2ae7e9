package usecase

import (
	"time"

	"github.com/farescout/fare-aggregation-service/internal/domain"
	"github.com/farescout/fare-aggregation-service/internal/infrastructure/timeutil"
)

// Sampling tiers. Longer horizons are sampled more coarsely so the
// upstream call count stays O(horizon/step) instead of O(horizon).
const (
	// dailyHorizonDays is the longest horizon sampled every day.
	dailyHorizonDays = 10

	// mediumHorizonDays is the longest horizon sampled every
	// mediumStepDays days.
	mediumHorizonDays = 45

	mediumStepDays = 3
	coarseStepDays = 5
)

// SampleDates produces the ordered, deterministic sequence of query dates
// for a horizon. The first sample is always the horizon start; the
// horizon end is always included as the terminal sample even when the
// step does not land on it exactly. A zero-length horizon yields a single
// sample.
func SampleDates(h domain.SearchHorizon) []time.Time {
	step := stepForHorizon(h.Days())

	var samples []time.Time
	for d := h.From; !d.After(h.To); d = timeutil.AddDays(d, step) {
		samples = append(samples, d)
	}
	if last := samples[len(samples)-1]; !last.Equal(h.To) {
		samples = append(samples, h.To)
	}
	return samples
}

// stepForHorizon picks the sampling step for a horizon length in days.
func stepForHorizon(days int) int {
	switch {
	case days <= dailyHorizonDays:
		return 1
	case days <= mediumHorizonDays:
		return mediumStepDays
	default:
		return coarseStepDays
	}
}
