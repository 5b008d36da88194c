package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the lookup pipeline.
type Metrics struct {
	// Terminal outcome of each request: success or one of the failure kinds
	RequestOutcome *prometheus.CounterVec

	// Primary records by extraction result: accepted, rejected
	Candidates *prometheus.CounterVec

	// Enrichment calls by result: ok, failed
	Enrichments *prometheus.CounterVec

	// Whole pipeline latency, validation to assembly
	LookupLatency prometheus.Histogram
}

// New creates the lookup metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lookupagg_requests_total",
			Help: "Lookup requests by terminal outcome",
		}, []string{"outcome"}),

		Candidates: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lookupagg_candidates_total",
			Help: "Primary records by identifier extraction result",
		}, []string{"result"}),

		Enrichments: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lookupagg_enrichments_total",
			Help: "Enrichment calls by result",
		}, []string{"result"}),

		LookupLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lookupagg_lookup_duration_seconds",
			Help:    "Duration of a full lookup including both upstream stages",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40},
		}),
	}
}

// IncrementOutcome records a terminal request outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.RequestOutcome.WithLabelValues(outcome).Inc()
	}
}

// AddCandidates records how many primary records were accepted and rejected.
func (m *Metrics) AddCandidates(accepted, rejected int) {
	if m != nil {
		m.Candidates.WithLabelValues("accepted").Add(float64(accepted))
		m.Candidates.WithLabelValues("rejected").Add(float64(rejected))
	}
}

// IncrementEnrichment records one enrichment call result.
func (m *Metrics) IncrementEnrichment(ok bool) {
	if m == nil {
		return
	}
	if ok {
		m.Enrichments.WithLabelValues("ok").Inc()
		return
	}
	m.Enrichments.WithLabelValues("failed").Inc()
}

// ObserveLookupLatency records the total pipeline duration.
func (m *Metrics) ObserveLookupLatency(d time.Duration) {
	if m != nil {
		m.LookupLatency.Observe(d.Seconds())
	}
}
