package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

const namespace = "storeadmin"

// Metrics holds the collectors exposed on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	Requests     *prometheus.CounterVec
	LatencyMS    *prometheus.HistogramVec
	Transitions  *prometheus.CounterVec
	BulkAffected *prometheus.CounterVec
	Failures     *prometheus.CounterVec
}

// New builds collectors on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"handler", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"handler"}),
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Committed order status transitions.",
		}, []string{"from", "to"}),
		BulkAffected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bulk_affected_total",
			Help:      "Rows changed by committed bulk actions.",
		}, []string{"scope", "action"}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failures_total",
			Help:      "Rejected or failed admin operations.",
		}, []string{"operation"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Requests,
		m.LatencyMS,
		m.Transitions,
		m.BulkAffected,
		m.Failures,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveTransition(result *model.TransitionResult) {
	m.Transitions.WithLabelValues(string(result.PreviousStatus), string(result.Status)).Inc()
}

func (m *Metrics) ObserveBulk(result *model.BulkResult) {
	m.BulkAffected.WithLabelValues(string(result.Scope), string(result.Action)).Add(float64(result.Affected))
}

func (m *Metrics) ObserveFailure(operation string) {
	m.Failures.WithLabelValues(operation).Inc()
}
