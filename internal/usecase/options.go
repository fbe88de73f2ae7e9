// Package usecase contains the business logic for fare aggregation.
// It fans lookups out over the destination catalog in bounded-concurrency
// batches and reduces the results to one cheapest record per group.
package usecase

import "time"

// Default engine settings.
const (
	// DefaultBatchSize bounds how many lookups run concurrently. Kept
	// small to stay under the upstream's rate tolerance.
	DefaultBatchSize = 3

	// DefaultBatchPause is the smoothing pause between batches.
	DefaultBatchPause = 500 * time.Millisecond

	// DefaultMaxAttempts is the per-item retry budget.
	DefaultMaxAttempts = 3

	// DefaultRateLimitFloor is the minimum backoff after an explicit
	// rate-limit signal.
	DefaultRateLimitFloor = 2 * time.Second

	// dateSlackDays widens defensive date filters by this many days on
	// each side, matching the upstream's flexible-window spread.
	dateSlackDays = 1
)

// Config contains configuration options for the aggregation engine.
type Config struct {
	// BatchSize is the number of work items executed concurrently.
	BatchSize int

	// BatchPause is the pause between consecutive batches.
	BatchPause time.Duration

	// MaxAttempts is the retry budget per work item.
	MaxAttempts int

	// InitialDelay is the backoff before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the backoff between retries.
	MaxDelay time.Duration

	// Multiplier widens the backoff after each failed attempt.
	Multiplier float64

	// JitterFactor randomizes backoff to desynchronize workers.
	JitterFactor float64

	// RateLimitFloor is the minimum sleep before retrying after the
	// upstream explicitly signalled throttling.
	RateLimitFloor time.Duration
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		BatchSize:      DefaultBatchSize,
		BatchPause:     DefaultBatchPause,
		MaxAttempts:    DefaultMaxAttempts,
		InitialDelay:   300 * time.Millisecond,
		MaxDelay:       5 * time.Second,
		Multiplier:     2.0,
		JitterFactor:   0.25,
		RateLimitFloor: DefaultRateLimitFloor,
	}
}

// withDefaults fills unset fields from the default configuration.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.BatchSize < 1 {
		c.BatchSize = def.BatchSize
	}
	if c.BatchPause < 0 {
		c.BatchPause = def.BatchPause
	}
	if c.MaxAttempts < 1 {
		c.MaxAttempts = def.MaxAttempts
	}
	if c.InitialDelay <= 0 {
		c.InitialDelay = def.InitialDelay
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = def.MaxDelay
	}
	if c.Multiplier < 1 {
		c.Multiplier = def.Multiplier
	}
	if c.JitterFactor < 0 || c.JitterFactor > 1 {
		c.JitterFactor = def.JitterFactor
	}
	if c.RateLimitFloor < 0 {
		c.RateLimitFloor = def.RateLimitFloor
	}
	return c
}
