package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLookupError_Error tests the message format with and without a cause.
func TestLookupError_Error(t *testing.T) {
	withCause := NewTransient("request failed", errors.New("connection reset"))
	assert.Equal(t, "fare lookup transient: request failed: connection reset", withCause.Error())

	withoutCause := NewRateLimited("status 429")
	assert.Equal(t, "fare lookup rate_limited: status 429", withoutCause.Error())
}

// TestLookupError_Unwrap tests cause propagation through errors.Is.
func TestLookupError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewTransient("fetch failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Nil(t, NewRateLimited("throttled").Unwrap())
}

// TestAsLookupError tests extraction through wrapped chains.
func TestAsLookupError(t *testing.T) {
	inner := NewRateLimited("status 429")
	wrapped := fmt.Errorf("attempt 2: %w", inner)

	le, ok := AsLookupError(wrapped)
	require.True(t, ok)
	assert.Equal(t, FailureRateLimited, le.Kind)

	_, ok = AsLookupError(errors.New("plain"))
	assert.False(t, ok)

	_, ok = AsLookupError(nil)
	assert.False(t, ok)
}

// TestFailureKindPredicates tests the classification helpers.
func TestFailureKindPredicates(t *testing.T) {
	rateLimited := NewRateLimited("status 429")
	transient := NewTransient("timeout", nil)

	assert.True(t, IsRateLimited(rateLimited))
	assert.False(t, IsRateLimited(transient))

	assert.True(t, IsTransient(transient))
	assert.False(t, IsTransient(rateLimited))

	assert.False(t, IsTransient(errors.New("plain")))
	assert.False(t, IsRateLimited(nil))
}
