package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/valuecheck/pkg/rulespec"
	"github.com/dmitrymomot/valuecheck/pkg/validator"
)

// Validation outcomes reported by valuecheck_validations_total.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Metrics holds the API collectors on a dedicated registry.
type Metrics struct {
	registry     *prometheus.Registry
	validations  *prometheus.CounterVec
	ruleFailures *prometheus.CounterVec
}

// NewMetrics registers the API collectors plus Go runtime and process
// collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "valuecheck_validations_total",
			Help: "Validation requests by outcome.",
		}, []string{"outcome"}),
		ruleFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "valuecheck_rule_failures_total",
			Help: "Failed rule evaluations by rule name.",
		}, []string{"rule"}),
	}
}

// Registry returns the registry backing the /metrics endpoint.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) observe(failures validator.ValidationErrors, err error) {
	switch {
	case err != nil:
		m.validations.WithLabelValues(OutcomeError).Inc()
	case failures.IsEmpty():
		m.validations.WithLabelValues(OutcomeValid).Inc()
	default:
		m.validations.WithLabelValues(OutcomeInvalid).Inc()
		// Label by rule name so parameter values do not grow cardinality.
		for _, f := range failures {
			m.ruleFailures.WithLabelValues(rulespec.Parse(f.Rule).Name).Inc()
		}
	}
}
