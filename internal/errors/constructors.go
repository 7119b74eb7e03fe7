package errors

import (
	stderrors "errors"
)

// Stdlib pass-throughs so callers don't need a second errors import.

func Is(err, target error) bool     { return stderrors.Is(err, target) }
func As(err error, target any) bool { return stderrors.As(err, target) }

// Convenience constructors for common error patterns

// Caller-contract violations

func ValidationFailed(field, reason string) *RenderError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

func ConfigInvalid(field, reason string) *RenderError {
	return New(CategoryConfig, SeverityFatal, "invalid configuration").
		WithContext("field", field).
		WithContext("reason", reason)
}

func ConfigNotFound(path string) *RenderError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigRequired(field string) *RenderError {
	return New(CategoryConfig, SeverityFatal, "required configuration missing").
		WithContext("field", field)
}

// Content and rendering errors

func ContentDecodeError(cause error) *RenderError {
	return Wrap(cause, CategoryContent, SeverityFatal, "content payload decode failed")
}

func RenderFailed(component string, cause error) *RenderError {
	return Wrap(cause, CategoryRender, SeverityFatal, "render failed").
		WithContext("component", component)
}
