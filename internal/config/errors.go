package config

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigLoadFailed is returned when the configuration cannot be decoded.
	ErrConfigLoadFailed = errors.New("failed to load configuration")

	// ErrConfigValidationFailed is returned when configuration validation fails.
	ErrConfigValidationFailed = errors.New("configuration validation failed")
)

// ValidationError represents an error in configuration validation.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: field %q with value %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets callers match any validation failure with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrConfigValidationFailed
}
