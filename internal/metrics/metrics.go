// Package metrics exposes Prometheus counters for broadcast outcomes.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Broadcast kinds.
const (
	KindCustom = "custom"
	KindTest   = "test"
)

// Broadcast outcomes.
const (
	OutcomeSent     = "sent"
	OutcomeFailed   = "failed"
	OutcomeRejected = "rejected"
)

// Metrics holds the collectors registered by the service.
type Metrics struct {
	registry   *prometheus.Registry
	broadcasts *prometheus.CounterVec
}

// New returns a Metrics backed by its own registry, including Go runtime
// and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	broadcasts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "topicast",
		Name:      "broadcasts_total",
		Help:      "Broadcast requests by kind and outcome.",
	}, []string{"kind", "outcome"})

	reg.MustRegister(
		broadcasts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Metrics{registry: reg, broadcasts: broadcasts}
}

// ObserveBroadcast increments the counter for kind and outcome. A nil
// receiver is a no-op.
func (m *Metrics) ObserveBroadcast(kind, outcome string) {
	if m == nil {
		return
	}
	m.broadcasts.WithLabelValues(kind, outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
