// Package metrics exposes Prometheus counters for the prediction service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	Predictions *prometheus.CounterVec
	Lookups     *prometheus.CounterVec
}

// Lookup outcome label values.
const (
	LookupOK     = "ok"
	LookupNoData = "no_data"
	LookupError  = "error"
)

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: reg,
		Predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adrevenue",
			Name:      "predictions_total",
			Help:      "Revenue predictions served, by input path.",
		}, []string{"path"}),
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adrevenue",
			Name:      "lookups_total",
			Help:      "YouTube metadata lookups, by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.Predictions, m.Lookups)

	return m
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
