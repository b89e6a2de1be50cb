// Package metrics holds the Prometheus collectors of the panic-button server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "panic_button"

// Outcome labels of a status change.
const (
	OutcomeOK              = "ok"
	OutcomeUnauthenticated = "unauthenticated"
	OutcomeStoreError      = "store_error"
	OutcomeInvalid         = "invalid"
)

// Metrics holds the collectors and the registry they are registered in.
type Metrics struct {
	registry *prometheus.Registry

	statusChanges *prometheus.CounterVec
	deliveries    *prometheus.CounterVec
	sendDuration  *prometheus.HistogramVec
}

// New creates the collectors on a dedicated registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		statusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_changes_total",
			Help:      "Status change requests by requested status and outcome.",
		}, []string{"status", "outcome"}),
		deliveries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Per-contact alert deliveries by status and result.",
		}, []string{"status", "result"}),
		sendDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "send_duration_seconds",
			Help:      "Latency of a single send to the messaging channel.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"result"}),
	}
}

// ObserveStatusChange counts one status change request.
func (m *Metrics) ObserveStatusChange(status, outcome string) {
	if m == nil {
		return
	}

	m.statusChanges.WithLabelValues(status, outcome).Inc()
}

// ObserveDelivery counts one delivery attempt and records its latency.
func (m *Metrics) ObserveDelivery(status string, delivered bool, took time.Duration) {
	if m == nil {
		return
	}

	result := "failed"
	if delivered {
		result = "delivered"
	}

	m.deliveries.WithLabelValues(status, result).Inc()
	m.sendDuration.WithLabelValues(result).Observe(took.Seconds())
}

// Registry exposes the registry for tests and custom exporters.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
