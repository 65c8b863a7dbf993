// ABOUTME: Custom error types for the feed ingestion pipeline
// ABOUTME: Provides structured errors so callers can distinguish failure classes

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// FetchError means every fetch strategy for a URL was exhausted. Reasons
// holds one short message per attempted strategy, in attempt order, so an
// operator can tell "no items" from "proxy unreachable" from "timeout".
type FetchError struct {
	URL     string
	Reasons []string
}

// Error implements the error interface
func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch feed from %s, tried multiple methods: %s",
		e.URL, strings.Join(e.Reasons, ", "))
}

// ParseError means the raw feed text was malformed or had no recognizable
// RSS/Atom structure or extractable items.
type ParseError struct {
	Reason string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse feed: %s", e.Reason)
}

// ValidationError represents a rejected input
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
