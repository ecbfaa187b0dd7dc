package flint

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched (via errors.Is) by every error flint returns
// for bad input: ArgumentError and ConfigError both unwrap to it.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports a missing or malformed argument.
type ArgumentError struct {
	// Param names the offending parameter, e.g. "patterns" or "replacements".
	Param string

	// Reason describes what is wrong with it.
	Reason string
}

// Error implements the error interface
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("flint: invalid argument %q: %s", e.Param, e.Reason)
}

// Unwrap returns ErrInvalidArgument
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field   string
	Message string
	Cause   error // Optional underlying error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("flint: invalid config %s: %s: %v", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("flint: invalid config %s: %s", e.Field, e.Message)
}

// Unwrap returns both ErrInvalidArgument and the underlying cause, if any.
func (e *ConfigError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrInvalidArgument, e.Cause}
	}
	return []error{ErrInvalidArgument}
}

func argError(param, reason string) error {
	return &ArgumentError{Param: param, Reason: reason}
}
