package adaptation

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Adapt outcomes recorded by Metrics.
const (
	OutcomeProvided = "provided" // adaptee already satisfied the target
	OutcomeAdapted  = "adapted"
	OutcomeDefault  = "default"
	OutcomeFailed   = "failed"
	OutcomeError    = "error"
)

// Materialization outcomes recorded by Metrics.
const (
	MaterializedOK       = "ok"
	MaterializedDeclined = "declined"
	MaterializedError    = "error"
)

// Metrics holds the Prometheus collectors of a Manager. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	AdaptTotal            *prometheus.CounterVec
	MaterializationsTotal *prometheus.CounterVec
	ChainLength           prometheus.Histogram
	SearchExpansions      prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		AdaptTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adaptation_adapt_total",
				Help: "Adapt calls by outcome",
			},
			[]string{"outcome"},
		),
		MaterializationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adaptation_materializations_total",
				Help: "Chain materializations by outcome",
			},
			[]string{"outcome"},
		),
		ChainLength: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "adaptation_chain_length",
				Help:    "Number of offers in successfully materialized chains",
				Buckets: []float64{0, 1, 2, 3, 4, 6, 8},
			},
		),
		SearchExpansions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "adaptation_search_expansions_total",
				Help: "Candidate chains popped from the search queue",
			},
		),
	}

	if reg == nil {
		return m, nil
	}

	for _, c := range []prometheus.Collector{
		m.AdaptTotal,
		m.MaterializationsTotal,
		m.ChainLength,
		m.SearchExpansions,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register adaptation metrics: %w", err)
		}
	}

	return m, nil
}

func (m *Metrics) adapt(outcome string) {
	if m == nil {
		return
	}

	m.AdaptTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) materialization(outcome string) {
	if m == nil {
		return
	}

	m.MaterializationsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) chain(length int) {
	if m == nil {
		return
	}

	m.ChainLength.Observe(float64(length))
}

func (m *Metrics) expansions(n int) {
	if m == nil {
		return
	}

	m.SearchExpansions.Add(float64(n))
}
