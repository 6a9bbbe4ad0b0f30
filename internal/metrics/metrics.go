// Package metrics owns the Prometheus collectors exposed on /metrics.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/nfrund/resumio/internal/apiclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sony/gobreaker/v2"
)

const namespace = "resumio"

// Outcome labels for backend requests.
const (
	OutcomeSuccess     = "success"
	OutcomeClientError = "client_error"
	OutcomeServerError = "server_error"
	OutcomeBreakerOpen = "breaker_open"
	OutcomeTransport   = "transport_error"
)

// Metrics groups the application's collectors on a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	backendRequests *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec
	submissions     *prometheus.CounterVec
	breakerState    prometheus.Gauge
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		backendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_requests_total",
			Help:      "Calls made to the resume backend, by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		backendDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Latency of calls to the resume backend.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"endpoint", "outcome"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_submissions_total",
			Help:      "Feature page submissions, by page and outcome.",
		}, []string{"page", "outcome"}),
		breakerState: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "backend_breaker_state",
			Help:      "Backend circuit breaker state: 0 closed, 1 half-open, 2 open.",
		}),
	}
	m.registry.MustRegister(
		m.backendRequests,
		m.backendDuration,
		m.submissions,
		m.breakerState,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest implements apiclient.Observer.
func (m *Metrics) ObserveRequest(endpoint string, d time.Duration, err error) {
	outcome := Classify(err)
	m.backendRequests.WithLabelValues(endpoint, outcome).Inc()
	m.backendDuration.WithLabelValues(endpoint, outcome).Observe(d.Seconds())
}

// CountSubmission increments the page submission counter.
func (m *Metrics) CountSubmission(page, outcome string) {
	m.submissions.WithLabelValues(page, outcome).Inc()
}

// SetBreakerState records the breaker's current state.
func (m *Metrics) SetBreakerState(s gobreaker.State) {
	m.breakerState.Set(float64(s))
}

// Classify maps a backend call error to an outcome label.
func Classify(err error) string {
	var se *apiclient.StatusError
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, apiclient.ErrBreakerOpen):
		return OutcomeBreakerOpen
	case errors.As(err, &se) && se.StatusCode < 500:
		return OutcomeClientError
	case errors.As(err, &se):
		return OutcomeServerError
	default:
		return OutcomeTransport
	}
}
