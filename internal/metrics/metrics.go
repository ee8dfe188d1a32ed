// Package metrics holds the Prometheus collectors of the belief service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "jtms"

type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	waves          prometheus.Counter
	recomputations prometheus.Counter
	flagged        prometheus.Counter
	beliefs        prometheus.Gauge
	justifications prometheus.Gauge
	seedReloads    *prometheus.CounterVec
}

// New registers every collector on a fresh registry, so several instances
// can coexist in tests.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		waves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "propagation_waves_total",
			Help:      "Propagation cascades run by the network.",
		}),
		recomputations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recomputations_total",
			Help:      "Belief recomputations across all waves.",
		}),
		flagged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "non_monotonic_flagged_total",
			Help:      "Beliefs flagged non-monotonic by the cycle rescan.",
		}),
		beliefs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "beliefs",
			Help:      "Live beliefs in the network.",
		}),
		justifications: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "justifications",
			Help:      "Justifications attached to a live conclusion.",
		}),
		seedReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seed_reloads_total",
			Help:      "Seed document loads by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.waves,
		m.recomputations,
		m.flagged,
		m.beliefs,
		m.justifications,
		m.seedReloads,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(method string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// WaveCompleted and BeliefsFlagged let Metrics observe a jtms.Network.
func (m *Metrics) WaveCompleted(recomputed int) {
	m.waves.Inc()
	m.recomputations.Add(float64(recomputed))
}

func (m *Metrics) BeliefsFlagged(ids []string) {
	m.flagged.Add(float64(len(ids)))
}

func (m *Metrics) SetNetworkSize(beliefs, justifications int) {
	m.beliefs.Set(float64(beliefs))
	m.justifications.Set(float64(justifications))
}

func (m *Metrics) SeedLoaded(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.seedReloads.WithLabelValues(outcome).Inc()
}
