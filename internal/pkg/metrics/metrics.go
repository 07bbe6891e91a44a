// Package metrics holds the Prometheus collectors of the support bot.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "supportbot"

// ServerMetrics groups every collector the service exports.
type ServerMetrics struct {
	Requests     *prometheus.CounterVec
	LatencyMS    *prometheus.HistogramVec
	Replies      *prometheus.CounterVec
	Failures     *prometheus.CounterVec
	DependencyUp *prometheus.GaugeVec
}

// NewServerMetrics creates the collectors and registers them with reg.
func NewServerMetrics(reg prometheus.Registerer) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	replies := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chat",
		Name:      "replies_total",
		Help:      "Chat replies sent, by resolved intent.",
	}, []string{"intent"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chat",
		Name:      "dependency_failures_total",
		Help:      "Chat requests answered with a backend error, by failing dependency.",
	}, []string{"dependency"})
	dependencyUp := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "dependency_up",
		Help:      "1 if the last probe of the dependency succeeded, 0 otherwise.",
	}, []string{"dependency"})

	reg.MustRegister(requests, latency, replies, failures, dependencyUp)
	return &ServerMetrics{
		Requests:     requests,
		LatencyMS:    latency,
		Replies:      replies,
		Failures:     failures,
		DependencyUp: dependencyUp,
	}
}

// ObserveDependency sets the dependency_up gauge from a probe result.
func (m *ServerMetrics) ObserveDependency(name string, err error) {
	value := 1.0
	if err != nil {
		value = 0
	}
	m.DependencyUp.WithLabelValues(name).Set(value)
}

// Handler exposes the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
