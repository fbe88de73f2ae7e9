package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fare aggregation domain.
var (
	// ErrInvalidRequest indicates the caller supplied invalid search
	// parameters. Maps to HTTP 400 at the boundary.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidRecord indicates a fare record violates its invariants.
	ErrInvalidRecord = errors.New("invalid fare record")

	// ErrUnknownDestination indicates a destination code that is not in
	// the catalog.
	ErrUnknownDestination = errors.New("unknown destination")
)

// FailureKind classifies a failed upstream lookup. The retry wrapper uses
// the kind to decide whether another attempt is worthwhile.
type FailureKind string

const (
	// FailureRateLimited means the upstream explicitly signalled
	// throttling (e.g. HTTP 429). Always worth retrying after backoff.
	FailureRateLimited FailureKind = "rate_limited"

	// FailureTransient covers timeouts, connection resets, malformed
	// bodies, and unexpected status codes. Retried while attempts remain.
	FailureTransient FailureKind = "transient"
)

// LookupError is the structured failure a fare source returns. A
// well-formed response with zero fares is not an error; sources signal it
// with an empty slice and a nil error.
type LookupError struct {
	// Kind classifies the failure for the retry policy.
	Kind FailureKind

	// Detail is a human-readable description of what went wrong.
	Detail string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fare lookup %s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("fare lookup %s: %s", e.Kind, e.Detail)
}

// Unwrap returns the underlying cause.
func (e *LookupError) Unwrap() error {
	return e.Err
}

// NewRateLimited creates a rate-limited lookup failure.
func NewRateLimited(detail string) *LookupError {
	return &LookupError{Kind: FailureRateLimited, Detail: detail}
}

// NewTransient creates a transient lookup failure wrapping an optional
// cause.
func NewTransient(detail string, err error) *LookupError {
	return &LookupError{Kind: FailureTransient, Detail: detail, Err: err}
}

// AsLookupError extracts a LookupError from an error chain.
func AsLookupError(err error) (*LookupError, bool) {
	var le *LookupError
	ok := errors.As(err, &le)
	return le, ok
}

// IsRateLimited reports whether err is a rate-limited lookup failure.
func IsRateLimited(err error) bool {
	le, ok := AsLookupError(err)
	return ok && le.Kind == FailureRateLimited
}

// IsTransient reports whether err is a transient lookup failure.
func IsTransient(err error) bool {
	le, ok := AsLookupError(err)
	return ok && le.Kind == FailureTransient
}
