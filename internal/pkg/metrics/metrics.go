// Package metrics holds the Prometheus instruments of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	DeliveryTransitions    *prometheus.CounterVec
	NotificationsPublished prometheus.Counter
	AuthenticationFailures prometheus.Counter
	RevocationCheckMs      prometheus.Histogram
	HTTPRequestDuration    *prometheus.HistogramVec
}

// New registers the metrics with the default registry. Call it once per process.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		DeliveryTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fastfeet_delivery_transitions_total",
			Help: "Delivery workflow transitions that were committed, by resulting status",
		}, []string{"status"}),
		NotificationsPublished: factory.NewCounter(prometheus.CounterOpts{
			Name: "fastfeet_notifications_published_total",
			Help: "Notifications relayed to the broker",
		}),
		AuthenticationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "fastfeet_authentication_failures_total",
			Help: "Rejected session requests and bearer tokens",
		}),
		RevocationCheckMs: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fastfeet_token_revocation_check_duration_ms",
			Help:    "Latency of token revocation checks in milliseconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
		}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fastfeet_http_request_duration_seconds",
			Help:    "HTTP request latency by route, method and status code",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
}

func (m *Metrics) IncrementDeliveryTransitions(status string) {
	m.DeliveryTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) AddNotificationsPublished(n int) {
	m.NotificationsPublished.Add(float64(n))
}

func (m *Metrics) IncrementAuthenticationFailures() {
	m.AuthenticationFailures.Inc()
}

func (m *Metrics) ObserveRevocationCheck(elapsed time.Duration) {
	m.RevocationCheckMs.Observe(float64(elapsed.Microseconds()) / 1000.0)
}

func (m *Metrics) ObserveHTTPRequest(route string, method string, status int, elapsed time.Duration) {
	m.HTTPRequestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
