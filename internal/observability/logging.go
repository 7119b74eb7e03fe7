// Package observability provides structured logging context for render
// invocations. Fields attached to a context.Context flow into every log line
// emitted while that invocation is in flight.
package observability

import (
	"context"
	"log/slog"
)

// LogContext holds structured logging context information.
type LogContext struct {
	StorySlug string
	Component string
	Stage     string
}

// logContextKeyType is used for context values.
type logContextKeyType string

const logContextKey logContextKeyType = "log-context"

// WithStorySlug adds the story slug to the context.
func WithStorySlug(ctx context.Context, slug string) context.Context {
	lc := extractLogContext(ctx)
	lc.StorySlug = slug
	return context.WithValue(ctx, logContextKey, lc)
}

// WithComponent adds the rendering component name to the context.
func WithComponent(ctx context.Context, component string) context.Context {
	lc := extractLogContext(ctx)
	lc.Component = component
	return context.WithValue(ctx, logContextKey, lc)
}

// WithStage adds a stage name to the context.
func WithStage(ctx context.Context, stage string) context.Context {
	lc := extractLogContext(ctx)
	lc.Stage = stage
	return context.WithValue(ctx, logContextKey, lc)
}

// GetContext retrieves the LogContext stored in ctx, if any.
func GetContext(ctx context.Context) LogContext {
	return extractLogContext(ctx)
}

// extractLogContext retrieves or creates a LogContext from the context.
func extractLogContext(ctx context.Context) LogContext {
	if lc, ok := ctx.Value(logContextKey).(LogContext); ok {
		return lc
	}
	return LogContext{}
}

// getLogAttrs returns slog attributes from the context's LogContext.
func getLogAttrs(ctx context.Context) []slog.Attr {
	lc := extractLogContext(ctx)
	attrs := []slog.Attr{}

	if lc.StorySlug != "" {
		attrs = append(attrs, slog.String("story.slug", lc.StorySlug))
	}
	if lc.Component != "" {
		attrs = append(attrs, slog.String("component", lc.Component))
	}
	if lc.Stage != "" {
		attrs = append(attrs, slog.String("stage", lc.Stage))
	}

	return attrs
}

// InfoContext logs an info message with context information.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	allAttrs := append(getLogAttrs(ctx), attrs...)
	slog.LogAttrs(ctx, slog.LevelInfo, msg, allAttrs...)
}

// WarnContext logs a warning message with context information.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	allAttrs := append(getLogAttrs(ctx), attrs...)
	slog.LogAttrs(ctx, slog.LevelWarn, msg, allAttrs...)
}

// ErrorContext logs an error message with context information.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	allAttrs := append(getLogAttrs(ctx), attrs...)
	slog.LogAttrs(ctx, slog.LevelError, msg, allAttrs...)
}

// DebugContext logs a debug message with context information.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	allAttrs := append(getLogAttrs(ctx), attrs...)
	slog.LogAttrs(ctx, slog.LevelDebug, msg, allAttrs...)
}

// Canonical log field helpers, kept granular so callers can compose.

func FieldError(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

func FieldCount(n int) slog.Attr      { return slog.Int("count", n) }
func FieldPath(path string) slog.Attr { return slog.String("path", path) }
