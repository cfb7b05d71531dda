package metrics

import (
	"errors"
	"net/http"

	"calc/internal/calculator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values for calc_operations_total.
const (
	OutcomeSuccess     = "success"
	OutcomeDomainError = "domain_error"
	OutcomeError       = "error"
)

// Metrics represents the collection of calculator metrics.
// Every Metrics owns its registry so that sessions (and tests) can each
// create one without tripping duplicate registration.
type Metrics struct {
	registry *prometheus.Registry

	OperationsTotal  *prometheus.CounterVec
	ParseErrorsTotal *prometheus.CounterVec
	InvalidChoices   prometheus.Counter
	HistoryEntries   prometheus.Gauge
}

// NewMetrics creates and registers all calculator metrics
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.OperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calc_operations_total",
			Help: "Total number of calculator operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	m.ParseErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calc_parse_errors_total",
			Help: "Total number of rejected numeric inputs",
		},
		[]string{"kind"},
	)

	m.InvalidChoices = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "calc_invalid_choices_total",
			Help: "Total number of unknown menu selections",
		},
	)

	m.HistoryEntries = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "calc_history_entries",
			Help: "Number of records currently held in history",
		},
	)

	m.registry.MustRegister(
		m.OperationsTotal,
		m.ParseErrorsTotal,
		m.InvalidChoices,
		m.HistoryEntries,
	)

	return m
}

// ObserveOperation counts one finished operation. A nil err is a success.
func (m *Metrics) ObserveOperation(operation string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
		var domainErr *calculator.DomainError
		if errors.As(err, &domainErr) {
			outcome = OutcomeDomainError
		}
	}
	m.OperationsTotal.WithLabelValues(operation, outcome).Inc()
}

// ObserveParseError counts one rejected input of the given kind ("int" or "float").
func (m *Metrics) ObserveParseError(kind string) {
	m.ParseErrorsTotal.WithLabelValues(kind).Inc()
}

// ObserveInvalidChoice counts one unknown menu selection.
func (m *Metrics) ObserveInvalidChoice() {
	m.InvalidChoices.Inc()
}

// SetHistoryEntries publishes the current history length.
func (m *Metrics) SetHistoryEntries(n int) {
	m.HistoryEntries.Set(float64(n))
}

// Gatherer exposes the underlying registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Handler returns the Prometheus HTTP handler for this registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
