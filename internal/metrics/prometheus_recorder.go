package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once           sync.Once
	renderDuration *prom.HistogramVec
	renderResults  *prom.CounterVec
	nodeFallbacks  *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.renderDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "storyrender",
			Name:      "render_duration_seconds",
			Help:      "Duration of render operations by component",
			Buckets:   prom.DefBuckets,
		}, []string{"component"})
		pr.renderResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "storyrender",
			Name:      "render_results_total",
			Help:      "Render outcomes by component and result",
		}, []string{"component", "result"})
		pr.nodeFallbacks = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "storyrender",
			Name:      "node_fallbacks_total",
			Help:      "Unrecognized rich-text node kinds rendered via fallback",
		}, []string{"kind"})
		reg.MustRegister(pr.renderDuration, pr.renderResults, pr.nodeFallbacks)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveRenderDuration(component string, d time.Duration) {
	if p == nil || p.renderDuration == nil {
		return
	}
	p.renderDuration.WithLabelValues(component).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRenderResult(component string, result ResultLabel) {
	if p == nil || p.renderResults == nil {
		return
	}
	p.renderResults.WithLabelValues(component, string(result)).Inc()
}

func (p *PrometheusRecorder) IncNodeFallback(kind string) {
	if p == nil || p.nodeFallbacks == nil {
		return
	}
	p.nodeFallbacks.WithLabelValues(kind).Inc()
}
