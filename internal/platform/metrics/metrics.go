package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application. A nil *Metrics is
// a valid no-op receiver so pure-logic tests can skip registration.
type Metrics struct {
	Requests   *prometheus.CounterVec
	Rows       prometheus.Counter
	Redactions *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics against reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mco_mock_requests_total",
			Help: "Requests served, by endpoint and HTTP status.",
		}, []string{"endpoint", "status"}),
		Rows: factory.NewCounter(prometheus.CounterOpts{
			Name: "mco_mock_rows_synthesized_total",
			Help: "Aggregate rows synthesized across all endpoints.",
		}),
		Redactions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mco_mock_redactions_total",
			Help: "Small-cell rows redacted, by disclosure strategy.",
		}, []string{"strategy"}),
	}
}

// ObserveRequest counts one served request.
func (m *Metrics) ObserveRequest(endpoint string, status int) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}

// AddRows counts synthesized rows.
func (m *Metrics) AddRows(n int) {
	if m == nil {
		return
	}
	m.Rows.Add(float64(n))
}

// AddRedactions counts redacted rows for one strategy.
func (m *Metrics) AddRedactions(strategy string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.Redactions.WithLabelValues(strategy).Add(float64(n))
}
