// Package retry provides a bounded retry mechanism with widening jittered
// backoff. It is the policy layer between the aggregation engine and the
// fare source: callers classify failures through the RetryIf and DelayFor
// hooks, and exhausted budgets surface the last error so the caller can
// degrade to an empty result.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Config holds the retry policy options.
type Config struct {
	// MaxAttempts is the total attempt budget, including the first call.
	MaxAttempts int

	// InitialDelay is the backoff before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the backoff between retries.
	MaxDelay time.Duration

	// Multiplier widens the backoff after each failed attempt.
	Multiplier float64

	// JitterFactor adds up to this fraction of the current backoff as
	// random jitter, spreading synchronized retries across concurrent
	// workers. 0.2 means up to 20% extra.
	JitterFactor float64

	// RetryIf decides whether a failure is worth another attempt.
	// If nil, every error is retried while attempts remain.
	RetryIf func(error) bool

	// DelayFor optionally adjusts the computed backoff for a specific
	// failure. It receives the error and the jittered backoff and returns
	// the duration to actually sleep. Used to enforce a floor delay when
	// the upstream explicitly asked for backoff.
	DelayFor func(err error, backoff time.Duration) time.Duration
}

// DefaultConfig provides sensible defaults for retry behavior.
var DefaultConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 100 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.1,
}

// UpstreamConfig is tuned for calls against the rate-limited fare
// endpoint: slower start, wider jitter.
var UpstreamConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 300 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.25,
}

// Do executes fn with retry logic and returns the last error when the
// attempt budget is exhausted.
func Do(ctx context.Context, fn func() error, cfg Config) error {
	_, err := DoWithResult(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	}, cfg)
	return err
}

// DoWithResult executes a result-returning function with retry logic.
// It returns the first successful result, or the zero value and the last
// error once attempts are exhausted, the failure is non-retryable, or the
// context ends.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var result T
	var lastErr error
	backoff := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}

		if cfg.RetryIf != nil && !cfg.RetryIf(lastErr) {
			return result, lastErr
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		sleep := jitteredBackoff(backoff, cfg.MaxDelay, cfg.JitterFactor)
		if cfg.DelayFor != nil {
			sleep = cfg.DelayFor(lastErr, sleep)
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(sleep):
		}

		backoff = time.Duration(float64(backoff) * cfg.Multiplier)
	}

	var zero T
	return zero, lastErr
}

// jitteredBackoff computes the sleep duration for one retry: the current
// backoff plus random jitter, capped at maxDelay.
func jitteredBackoff(backoff, maxDelay time.Duration, jitterFactor float64) time.Duration {
	jitter := time.Duration(rand.Float64() * float64(backoff) * jitterFactor)
	sleep := backoff + jitter
	if maxDelay > 0 && sleep > maxDelay {
		sleep = maxDelay
	}
	return sleep
}

// Permanent wraps an error to indicate it should not be retried.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent creates a permanent (non-retryable) error.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// IsPermanent checks if an error is permanent.
func IsPermanent(err error) bool {
	var permanent *Permanent
	return errors.As(err, &permanent)
}

// SkipPermanent is a RetryIf predicate that skips permanent errors.
func SkipPermanent(err error) bool {
	return !IsPermanent(err)
}

// WithRetryIf returns a copy of the config with the given predicate.
func (c Config) WithRetryIf(fn func(error) bool) Config {
	c.RetryIf = fn
	return c
}

// WithDelayFor returns a copy of the config with the given delay hook.
func (c Config) WithDelayFor(fn func(error, time.Duration) time.Duration) Config {
	c.DelayFor = fn
	return c
}

// WithMaxAttempts returns a copy of the config with the given budget.
func (c Config) WithMaxAttempts(n int) Config {
	c.MaxAttempts = n
	return c
}

// WithInitialDelay returns a copy of the config with the given delay.
func (c Config) WithInitialDelay(d time.Duration) Config {
	c.InitialDelay = d
	return c
}
