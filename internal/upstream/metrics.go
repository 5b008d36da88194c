package upstream

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records latency and outcome of outbound calls per service.
type Metrics struct {
	CallLatency *prometheus.HistogramVec
	CallOutcome *prometheus.CounterVec
}

// NewMetrics creates the upstream metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CallLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lookupagg_upstream_call_duration_seconds",
			Help:    "Duration of outbound calls by service",
			Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"service"}),

		CallOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lookupagg_upstream_calls_total",
			Help: "Outbound calls by service and outcome (ok or failure category)",
		}, []string{"service", "outcome"}),
	}
}

// ObserveCall records one outbound call. An empty category means success.
func (m *Metrics) ObserveCall(service string, category Category, d time.Duration) {
	if m == nil {
		return
	}
	m.CallLatency.WithLabelValues(service).Observe(d.Seconds())
	outcome := string(category)
	if outcome == "" {
		outcome = "ok"
	}
	m.CallOutcome.WithLabelValues(service, outcome).Inc()
}
