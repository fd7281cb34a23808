package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation failure.
//
// Configuration arrives from three places (built-in defaults, an optional
// YAML file, environment variables) plus flags; a bad value from any of
// them produces this error and the command exits with ExitConfigError.
//
// Fields:
//   - Field: Name of the invalid setting, e.g. "level" or "WINGET_UPGRADE_LEVEL"
//   - Value: The offending value as given
//   - Message: Description of what is wrong
//   - ValidValues: List of accepted values for enum-like settings
type ValidationError struct {
	// Field is the setting that failed validation.
	Field string

	// Value is the rejected value exactly as provided.
	Value string

	// Message describes what is wrong with the value.
	Message string

	// ValidValues lists accepted options for enum-like settings.
	ValidValues []string
}

// Error implements the error interface.
//
// Returns "field: message (got "value")" with a valid-values suffix when
// the setting is enum-like.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.Field != "" {
		sb.WriteString(e.Field)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Value != "" {
		sb.WriteString(fmt.Sprintf(" (got %q)", e.Value))
	}
	if len(e.ValidValues) > 0 {
		sb.WriteString(fmt.Sprintf("; valid values: %s", strings.Join(e.ValidValues, ", ")))
	}
	return sb.String()
}

// IsValidationError checks if err is a ValidationError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ValidationError: The ValidationError if err is one, nil otherwise
//   - bool: true if err is a ValidationError
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// NewValidationError creates a ValidationError for a rejected setting.
//
// Parameters:
//   - field: The setting that failed validation
//   - value: The rejected value
//   - message: Description of the error
//
// Returns:
//   - *ValidationError: New validation error
//
// Example:
//
//	err := errors.NewValidationError("WINGET_UPGRADE_LEVEL", "huge", "unrecognized upgrade level")
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}
