// Package metrics exposes a Prometheus registry and /metrics HTTP server
// with the dog-finder search instruments.
package metrics

import (
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config holds the metrics server settings.
type Config struct {
	Address                 string `yaml:"address" env:"METRICS_ADDR"`
	ServiceName             string `yaml:"serviceName" env:"SERVICE_NAME"`
	EnableDefaultCollectors bool   `yaml:"enableDefaultCollectors"`
}

// NewConfig builds the Config from environment variables.
func NewConfig() Config {
	cfg := Config{
		Address:                 ":9090",
		ServiceName:             "dog-finder",
		EnableDefaultCollectors: true,
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" {
		cfg.Address = v
	}
	if v := os.Getenv("SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}
	return cfg
}

// Metrics owns the isolated Prometheus registry and the HTTP server serving
// it. Every metric carries a constant service label.
type Metrics struct {
	Server   *http.Server
	Registry *prometheus.Registry

	searchesTotal  *prometheus.CounterVec
	searchDuration *prometheus.HistogramVec
	indexedImages  prometheus.Counter
}

// NewMetrics creates the registry, registers the search instruments and the
// default Go/process collectors, and prepares the /metrics server.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()
	wrapped := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
		searchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dogfinder_searches_total",
			Help: "Total number of vector searches, by endpoint and outcome",
		}, []string{"endpoint", "status"}),
		searchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dogfinder_search_duration_seconds",
			Help:    "Duration of vector searches in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		indexedImages: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dogfinder_indexed_images_total",
			Help: "Total number of dog images indexed into the vector store",
		}),
	}

	wrapped.MustRegister(m.searchesTotal, m.searchDuration, m.indexedImages)

	if cfg.EnableDefaultCollectors {
		wrapped.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}
	return m
}

// ObserveSearch records one search outcome and its duration.
func (m *Metrics) ObserveSearch(endpoint, status string, duration time.Duration) {
	m.searchesTotal.WithLabelValues(endpoint, status).Inc()
	m.searchDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// AddIndexedImages counts images written to the vector store.
func (m *Metrics) AddIndexedImages(n int) {
	m.indexedImages.Add(float64(n))
}
