package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Request outcomes.
const (
	outcomeInvalid         = "invalid"
	outcomeTransport       = "transport_error"
	outcomeProtocol        = "protocol_error"
	outcomePrecheckFailed  = "precheck_failed"
	outcomeExecutionFailed = "execution_failed"
	outcomeSucceeded       = "succeeded"
)

// metrics collects request counts and dispatch latency on a private
// registry.
type metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func newMetrics(namespace string) *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "client",
				Name:      "requests_total",
				Help:      "Total number of transactions and queries by tag and outcome",
			},
			[]string{"tag", "outcome"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "client",
				Name:      "dispatch_duration_seconds",
				Help:      "Latency of a single remote call in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
			},
			[]string{"method"},
		),
	}
	m.registry.MustRegister(m.requests, m.latency)
	return m
}

func (m *metrics) request(tag, outcome string) {
	m.requests.WithLabelValues(tag, outcome).Inc()
}

func (m *metrics) dispatch(method string, d time.Duration) {
	m.latency.WithLabelValues(method).Observe(d.Seconds())
}
