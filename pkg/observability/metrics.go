// Package observability provides the metrics and tracing support the
// consuming runtime client wires in. Nothing here performs I/O until the
// client starts it.
package observability

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsConfig configures the metrics provider
type MetricsConfig struct {
	// Service identification
	ServiceName    string
	ServiceVersion string

	// Prometheus configuration
	MetricsPath string // HTTP path for metrics endpoint (default: /metrics)
	MetricsPort int    // Port for metrics server (default: 9090)

	// Metric options
	Namespace        string    // Prometheus namespace (default: mesh)
	HistogramBuckets []float64 // Custom histogram buckets for latency

	// Registerer receives the collectors; defaults to the global registry.
	Registerer prometheus.Registerer

	// Labels to add to all metrics
	ConstLabels prometheus.Labels
}

// MetricsProvider records client-side SDK metrics
type MetricsProvider struct {
	config MetricsConfig
	server *http.Server

	apiCallDuration *prometheus.HistogramVec
	apiCallTotal    *prometheus.CounterVec
	parseErrorTotal *prometheus.CounterVec
}

// NewMetricsProvider creates a new Prometheus metrics provider
func NewMetricsProvider(config MetricsConfig) (*MetricsProvider, error) {
	if config.Namespace == "" {
		config.Namespace = "mesh"
	}
	if config.MetricsPath == "" {
		config.MetricsPath = "/metrics"
	}
	if config.MetricsPort == 0 {
		config.MetricsPort = 9090
	}
	if config.HistogramBuckets == nil {
		// Default buckets for milliseconds
		config.HistogramBuckets = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000}
	}
	if config.Registerer == nil {
		config.Registerer = prometheus.DefaultRegisterer
	}

	if config.ConstLabels == nil {
		config.ConstLabels = prometheus.Labels{}
	}
	if config.ServiceName != "" {
		config.ConstLabels["service"] = config.ServiceName
	}
	if config.ServiceVersion != "" {
		config.ConstLabels["version"] = config.ServiceVersion
	}

	provider := &MetricsProvider{config: config}
	provider.initializeMetrics()

	if err := provider.registerMetrics(); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	return provider, nil
}

// initializeMetrics creates all metric collectors
func (p *MetricsProvider) initializeMetrics() {
	p.apiCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   p.config.Namespace,
			Name:        "api_call_duration_milliseconds",
			Help:        "Duration of sidecar API calls in milliseconds",
			Buckets:     p.config.HistogramBuckets,
			ConstLabels: p.config.ConstLabels,
		},
		[]string{"method", "status"},
	)

	p.apiCallTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   p.config.Namespace,
			Name:        "api_call_total",
			Help:        "Total number of sidecar API calls",
			ConstLabels: p.config.ConstLabels,
		},
		[]string{"method", "status"},
	)

	p.parseErrorTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   p.config.Namespace,
			Name:        "parse_error_total",
			Help:        "Total number of endpoint or payload parse failures",
			ConstLabels: p.config.ConstLabels,
		},
		[]string{"kind"},
	)
}

// registerMetrics registers all metrics with the configured registerer
func (p *MetricsProvider) registerMetrics() error {
	collectors := []prometheus.Collector{
		p.apiCallDuration,
		p.apiCallTotal,
		p.parseErrorTotal,
	}

	for _, collector := range collectors {
		if err := p.config.Registerer.Register(collector); err != nil {
			// Tolerate duplicate registration across providers
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}

	return nil
}

// RecordAPICall records one sidecar API call
func (p *MetricsProvider) RecordAPICall(method, status string, duration time.Duration) {
	ms := float64(duration.Milliseconds())
	p.apiCallDuration.WithLabelValues(method, status).Observe(ms)
	p.apiCallTotal.WithLabelValues(method, status).Inc()
}

// RecordParseError records an endpoint or payload parse failure
func (p *MetricsProvider) RecordParseError(kind string) {
	p.parseErrorTotal.WithLabelValues(kind).Inc()
}

// Start starts the metrics HTTP server
func (p *MetricsProvider) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle(p.config.MetricsPath, promhttp.Handler())

	p.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", p.config.MetricsPort),
		Handler: mux,
	}

	go func() {
		_ = p.server.ListenAndServe()
	}()

	return nil
}

// Shutdown gracefully shuts down the metrics server
func (p *MetricsProvider) Shutdown(ctx context.Context) error {
	if p.server != nil {
		return p.server.Shutdown(ctx)
	}
	return nil
}
