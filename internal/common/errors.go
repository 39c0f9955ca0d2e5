package common

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRoot is returned when the scan root is missing or not a directory.
	ErrInvalidRoot = errors.New("invalid root")
	// ErrInvalidConfiguration indicates configuration issues
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapErrorf wraps an error with formatted context information
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// InvalidRootError reports why a scan root was rejected.
type InvalidRootError struct {
	Path   string
	Reason string
	Err    error
}

func (e *InvalidRootError) Error() string {
	return fmt.Sprintf("invalid root '%s': %s", e.Path, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidRoot) match.
func (e *InvalidRootError) Is(target error) bool {
	return target == ErrInvalidRoot
}

func (e *InvalidRootError) Unwrap() error {
	return e.Err
}

// NewInvalidRootError creates a new invalid root error
func NewInvalidRootError(path, reason string, err error) *InvalidRootError {
	return &InvalidRootError{
		Path:   path,
		Reason: reason,
		Err:    err,
	}
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Section string
	Field   string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if e.Section != "" && e.Field != "" {
		return fmt.Sprintf("configuration error in section '%s', field '%s': %s", e.Section, e.Field, e.Reason)
	} else if e.Section != "" {
		return fmt.Sprintf("configuration error in section '%s': %s", e.Section, e.Reason)
	}
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// Is lets errors.Is(err, ErrInvalidConfiguration) match.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(section, field, reason string) *ConfigurationError {
	return &ConfigurationError{
		Section: section,
		Field:   field,
		Reason:  reason,
	}
}

// ErrorCollector helps collect multiple errors during processing
type ErrorCollector struct {
	errors []error
}

// Add adds an error to the collector
func (ec *ErrorCollector) Add(err error) {
	if err != nil {
		ec.errors = append(ec.errors, err)
	}
}

// HasErrors reports whether anything was collected
func (ec *ErrorCollector) HasErrors() bool {
	return len(ec.errors) > 0
}

// Error returns the collected errors as one error, or nil
func (ec *ErrorCollector) Error() error {
	switch len(ec.errors) {
	case 0:
		return nil
	case 1:
		return ec.errors[0]
	}
	messages := make([]string, 0, len(ec.errors))
	for _, err := range ec.errors {
		messages = append(messages, err.Error())
	}
	return fmt.Errorf("multiple errors occurred: [%s]", strings.Join(messages, "; "))
}
