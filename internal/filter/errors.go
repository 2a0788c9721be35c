package filter

import "fmt"

// InvalidArgumentError represents a filter option that failed validation.
type InvalidArgumentError struct {
	Option string
	Value  string
	Reason string
}

// NewInvalidArgumentError creates a new InvalidArgumentError.
func NewInvalidArgumentError(option, value, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Option: option, Value: value, Reason: reason}
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid value %q for --%s: %s", e.Value, e.Option, e.Reason)
}
