package ledgererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateFetchError(t *testing.T) {
	tests := []struct {
		name     string
		err      *RateFetchError
		expected string
	}{
		{
			name: "currency with cause",
			err: &RateFetchError{
				Currency:   "USD",
				SearchDate: "20250314",
				Reason:     "unexpected status 503",
				Err:        errors.New("service unavailable"),
			},
			expected: "rate fetch failed for USD on 20250314: unexpected status 503: service unavailable",
		},
		{
			name:     "feed level without date",
			err:      &RateFetchError{Reason: "decode response"},
			expected: "rate fetch failed for feed: decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestRateFetchError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("get rate: %w", &RateFetchError{Currency: "EUR", Err: cause})

	assert.True(t, IsRateFetch(err))
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsValidation(err))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "amount", Value: "abc", Reason: "not a number"}
	assert.Equal(t, "invalid amount 'abc': not a number", err.Error())
	assert.True(t, IsValidation(fmt.Errorf("record: %w", err)))
	assert.False(t, IsNotConfigured(err))
}

func TestNotConfiguredError(t *testing.T) {
	err := &NotConfiguredError{Setting: "monthly budget"}
	assert.Equal(t, "monthly budget is not configured", err.Error())
	assert.True(t, IsNotConfigured(err))
	assert.False(t, IsRateFetch(err))
	assert.False(t, IsNotConfigured(nil))
}
