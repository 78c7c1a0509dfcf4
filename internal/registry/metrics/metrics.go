package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the provider registry.
type Metrics struct {
	Reloads         *prometheus.CounterVec
	ProvidersLoaded prometheus.Gauge
	StatusUpdates   prometheus.Counter
}

// New creates a Metrics instance with all registry metrics registered.
func New() *Metrics {
	return &Metrics{
		Reloads: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "payrouter_registry_reloads_total",
			Help: "Registry reload attempts by result",
		}, []string{"result"}), // result: "ok"|"invalid"|"error"

		ProvidersLoaded: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "payrouter_registry_providers",
			Help: "Providers in the live registry generation",
		}),

		StatusUpdates: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payrouter_registry_status_updates_total",
			Help: "Administrative provider status updates",
		}),
	}
}

// IncrementReload records a reload attempt outcome.
func (m *Metrics) IncrementReload(result string) {
	if m != nil {
		m.Reloads.WithLabelValues(result).Inc()
	}
}

// SetProvidersLoaded records the size of the live generation.
func (m *Metrics) SetProvidersLoaded(n int) {
	if m != nil {
		m.ProvidersLoaded.Set(float64(n))
	}
}

// IncrementStatusUpdate records an admin status change.
func (m *Metrics) IncrementStatusUpdate() {
	if m != nil {
		m.StatusUpdates.Inc()
	}
}
