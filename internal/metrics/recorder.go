// Package metrics provides observability hooks for render operations.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics stay zero-overhead until a real implementation
// (Prometheus) is injected.
package metrics

import "time"

// ResultLabel enumerates render result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultError   ResultLabel = "error"
)

// Recorder defines observability hooks for render metrics. Implementations
// must be safe for concurrent use.
type Recorder interface {
	ObserveRenderDuration(component string, d time.Duration)
	IncRenderResult(component string, result ResultLabel)
	IncNodeFallback(kind string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRenderDuration(string, time.Duration) {}
func (NoopRecorder) IncRenderResult(string, ResultLabel)         {}
func (NoopRecorder) IncNodeFallback(string)                      {}
