// Package metrics holds the Prometheus collectors of the patient registry.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OutcomeAccepted labels a candidate that passed every rule.
const OutcomeAccepted = "accepted"

// Metrics tracks validation outcomes and registry operations.
type Metrics struct {
	// ValidationOutcomes counts pipeline verdicts by mode, field and code.
	// Accepted candidates use field "" and code [OutcomeAccepted].
	ValidationOutcomes *prometheus.CounterVec
	// UniquenessProbeFailures counts existence checks that failed with a
	// storage error.
	UniquenessProbeFailures prometheus.Counter
	// PatientOperations counts service calls by operation and result.
	PatientOperations *prometheus.CounterVec
	// OperationDuration observes service call latency by operation.
	OperationDuration *prometheus.HistogramVec
	// CedulaChecks counts single-number checks by result code.
	CedulaChecks *prometheus.CounterVec
	// HTTPRequests counts served requests by method, route pattern and status.
	HTTPRequests *prometheus.CounterVec
	// RateLimited counts write requests rejected by the limiter.
	RateLimited prometheus.Counter
	// DatabaseUp is 1 while the health probe reaches the database.
	DatabaseUp prometheus.Gauge
}

// New registers every collector with reg. Passing nil uses the default
// registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		ValidationOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "registry_validation_outcomes_total",
			Help: "Patient validation pipeline verdicts",
		}, []string{"mode", "field", "code"}),
		UniquenessProbeFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "registry_uniqueness_probe_failures_total",
			Help: "Cedula existence checks that failed with a storage error",
		}),
		PatientOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "registry_patient_operations_total",
			Help: "Patient service calls by operation and result",
		}, []string{"operation", "result"}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "registry_patient_operation_duration_seconds",
			Help:    "Duration of patient service calls",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
		CedulaChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "registry_cedula_checks_total",
			Help: "Single cedula checks by result code",
		}, []string{"code"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "registry_http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		RateLimited: factory.NewCounter(prometheus.CounterOpts{
			Name: "registry_http_rate_limited_total",
			Help: "Write requests rejected by the rate limiter",
		}),
		DatabaseUp: factory.NewGauge(prometheus.GaugeOpts{
			Name: "registry_database_up",
			Help: "Whether the last database health probe succeeded",
		}),
	}
}

// ObserveValidation records one pipeline verdict. An empty code means the
// candidate was accepted.
func (m *Metrics) ObserveValidation(mode, field, code string) {
	if m == nil {
		return
	}
	if code == "" {
		code = OutcomeAccepted
	}
	m.ValidationOutcomes.WithLabelValues(mode, field, code).Inc()
}

// IncrementProbeFailure records a failed uniqueness probe.
func (m *Metrics) IncrementProbeFailure() {
	if m == nil {
		return
	}
	m.UniquenessProbeFailures.Inc()
}

// ObserveOperation records a service call started at start.
func (m *Metrics) ObserveOperation(operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.PatientOperations.WithLabelValues(operation, result).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// ObserveCedulaCheck records a single-number check result.
func (m *Metrics) ObserveCedulaCheck(code string) {
	if m == nil {
		return
	}
	if code == "" {
		code = "valid"
	}
	m.CedulaChecks.WithLabelValues(code).Inc()
}

// ObserveHTTPRequest records one served request. route is the matched
// pattern, never the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// IncrementRateLimited records a request turned away by the limiter.
func (m *Metrics) IncrementRateLimited() {
	if m == nil {
		return
	}
	m.RateLimited.Inc()
}

// SetDatabaseUp records the outcome of the last health probe.
func (m *Metrics) SetDatabaseUp(up bool) {
	if m == nil {
		return
	}
	if up {
		m.DatabaseUp.Set(1)
		return
	}
	m.DatabaseUp.Set(0)
}
