// Package metrics holds the Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	UsersCreated       prometheus.Counter
	ValidationFailures *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
}

// New creates and registers all metrics against the given registerer. Tests
// pass a fresh registry to avoid duplicate-registration panics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		UsersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "signup_users_created_total",
			Help: "Total number of users created in the system",
		}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "signup_validation_failures_total",
			Help: "Total number of rejected registrations by offending field",
		}, []string{"field"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "signup_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// IncrementUsersCreated increments the users created counter by 1.
func (m *Metrics) IncrementUsersCreated() {
	m.UsersCreated.Inc()
}

// IncrementValidationFailure records a rejected registration for a field.
func (m *Metrics) IncrementValidationFailure(field string) {
	m.ValidationFailures.WithLabelValues(field).Inc()
}

// ObserveRequestDuration records a completed request's latency in seconds.
func (m *Metrics) ObserveRequestDuration(method, path string, seconds float64) {
	m.RequestDuration.WithLabelValues(method, path).Observe(seconds)
}
