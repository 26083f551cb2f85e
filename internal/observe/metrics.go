// Package observe holds the Prometheus metrics of the diary server and the
// provider decorators that feed them.
package observe

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds all Prometheus metrics for the application.
type Collector struct {
	registry *prometheus.Registry

	// Generation backends
	ProviderRequests *prometheus.CounterVec
	ProviderDuration *prometheus.HistogramVec

	// RPC
	RPCRequests *prometheus.CounterVec
	RPCDuration *prometheus.HistogramVec

	// Business
	EntriesStored   *prometheus.CounterVec
	EntriesDeleted  prometheus.Counter
	ImagesFiltered  prometheus.Counter
	ActiveSessions  prometheus.Gauge
	SessionsExpired prometheus.Counter
}

// NewCollector creates a collector with its own registry under namespace.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		ProviderRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "provider_requests_total",
				Help:      "Total number of generation backend calls",
			},
			[]string{"provider", "purpose", "status"},
		),
		ProviderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "provider_request_duration_seconds",
				Help:      "Generation backend call duration in seconds",
				Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 80, 120},
			},
			[]string{"provider", "purpose"},
		),
		RPCRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rpc_requests_total",
				Help:      "Total number of RPC requests",
			},
			[]string{"method", "code"},
		),
		RPCDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "rpc_request_duration_seconds",
				Help:      "RPC request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		EntriesStored: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "entries_stored_total",
				Help:      "Total number of diary entries stored",
			},
			[]string{"source"},
		),
		EntriesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_deleted_total",
			Help:      "Total number of diary entries deleted",
		}),
		ImagesFiltered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "images_filtered_total",
			Help:      "Total number of image artifacts rejected by the content filter",
		}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "interview_sessions_active",
			Help:      "Number of live interview transcripts",
		}),
		SessionsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interview_sessions_expired_total",
			Help:      "Total number of interview transcripts dropped after inactivity",
		}),
	}

	registry.MustRegister(
		c.ProviderRequests,
		c.ProviderDuration,
		c.RPCRequests,
		c.RPCDuration,
		c.EntriesStored,
		c.EntriesDeleted,
		c.ImagesFiltered,
		c.ActiveSessions,
		c.SessionsExpired,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
