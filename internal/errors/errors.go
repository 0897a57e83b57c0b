// Package errors provides a lightweight structured error type (DocsiteError)
// for category-based classification in the build pipeline and CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a docsite error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Build and processing errors
	CategoryNav        ErrorCategory = "nav"
	CategoryRender     ErrorCategory = "render"
	CategoryBuild      ErrorCategory = "build"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Runtime and infrastructure errors
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// DocsiteError is a structured error with category, severity, and context
type DocsiteError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for DocsiteError
type ContextFields map[string]any

// Error implements the error interface
func (e *DocsiteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *DocsiteError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *DocsiteError) WithContext(key string, value any) *DocsiteError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new DocsiteError
func New(category ErrorCategory, severity ErrorSeverity, message string) *DocsiteError {
	return &DocsiteError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Newf creates a new DocsiteError with a formatted message
func Newf(category ErrorCategory, severity ErrorSeverity, format string, args ...any) *DocsiteError {
	return New(category, severity, fmt.Sprintf(format, args...))
}

// Wrap creates a new DocsiteError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *DocsiteError {
	return &DocsiteError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// WrapError wraps an existing error with severity defaulted to SeverityError
func WrapError(err error, category ErrorCategory, message string) *DocsiteError {
	return &DocsiteError{
		Category: category,
		Severity: SeverityError,
		Message:  message,
		Cause:    err,
	}
}

// ValidationError creates a new validation error
func ValidationError(message string) *DocsiteError {
	return &DocsiteError{
		Category: CategoryValidation,
		Severity: SeverityError,
		Message:  message,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if de, ok := err.(*DocsiteError); ok {
		return de.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a DocsiteError
func GetCategory(err error) ErrorCategory {
	if de, ok := err.(*DocsiteError); ok {
		return de.Category
	}
	return CategoryInternal
}
