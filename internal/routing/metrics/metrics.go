package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the routing module.
type Metrics struct {
	// Decision outcomes by result and cache disposition
	Decisions *prometheus.CounterVec

	// Full evaluation latency (filter + draw + assembly)
	EvaluateLatency prometheus.Histogram

	// Providers in the registry at evaluation time
	ProvidersEvaluated prometheus.Histogram
}

// New creates a Metrics instance with all routing metrics registered.
func New() *Metrics {
	return &Metrics{
		Decisions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "payrouter_route_decisions_total",
			Help: "Total routing decisions by result and cache disposition",
		}, []string{"result", "cache"}), // result: "selected"|"no_candidate"; cache: "hit"|"miss"|"bypass"

		EvaluateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "payrouter_route_evaluate_duration_seconds",
			Help:    "Duration of a full routing evaluation",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		}),

		ProvidersEvaluated: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "payrouter_route_providers_evaluated",
			Help:    "Number of registry providers considered per evaluation",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		}),
	}
}

// IncrementDecision records a decision outcome.
func (m *Metrics) IncrementDecision(result, cache string) {
	if m != nil {
		m.Decisions.WithLabelValues(result, cache).Inc()
	}
}

// ObserveEvaluateLatency records a fresh evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}

// ObserveProvidersEvaluated records the registry size seen by an evaluation.
func (m *Metrics) ObserveProvidersEvaluated(n int) {
	if m != nil {
		m.ProvidersEvaluated.Observe(float64(n))
	}
}
