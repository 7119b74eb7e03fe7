// Package errors provides a lightweight structured error type (RenderError)
// for category-based classification across the rendering core and CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a render error for classification
type ErrorCategory string

const (
	// Caller-contract violations at a call site
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Content and rendering errors
	CategoryContent ErrorCategory = "content"
	CategoryRender  ErrorCategory = "render"

	// Everything else
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops the invocation
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded output
)

// RenderError is a structured error with category, severity, and context
type RenderError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for RenderError
type ContextFields map[string]any

// Error implements the error interface
func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *RenderError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *RenderError) WithContext(key string, value any) *RenderError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new RenderError
func New(category ErrorCategory, severity ErrorSeverity, message string) *RenderError {
	return &RenderError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new RenderError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *RenderError {
	return &RenderError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// CategoryOf reports the category of err, or CategoryInternal for errors
// that are not RenderErrors.
func CategoryOf(err error) ErrorCategory {
	var re *RenderError
	if As(err, &re) {
		return re.Category
	}
	return CategoryInternal
}

// IsCategory reports whether err is a RenderError of the given category.
func IsCategory(err error, category ErrorCategory) bool {
	var re *RenderError
	return As(err, &re) && re.Category == category
}
