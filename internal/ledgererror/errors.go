package ledgererror

import (
	"errors"
	"fmt"
)

// RateFetchError represents a failure to obtain a usable rate from the bank feed.
// Transport, status, decode and parse failures all end up here.
type RateFetchError struct {
	Currency   string
	SearchDate string
	Reason     string
	Err        error
}

func (e *RateFetchError) Error() string {
	target := e.Currency
	if target == "" {
		target = "feed"
	}
	msg := fmt.Sprintf("rate fetch failed for %s", target)
	if e.SearchDate != "" {
		msg += fmt.Sprintf(" on %s", e.SearchDate)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *RateFetchError) Unwrap() error {
	return e.Err
}

// ValidationError represents rejected user input
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
}

// NotConfiguredError signals that a limit or setting is absent.
// Callers treat it as the "no limit" state, not as a failure.
type NotConfiguredError struct {
	Setting string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%s is not configured", e.Setting)
}

// IsRateFetch reports whether err wraps a *RateFetchError
func IsRateFetch(err error) bool {
	var target *RateFetchError
	return errors.As(err, &target)
}

// IsValidation reports whether err wraps a *ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotConfigured reports whether err wraps a *NotConfiguredError
func IsNotConfigured(err error) bool {
	var target *NotConfiguredError
	return errors.As(err, &target)
}
