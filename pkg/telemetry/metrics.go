package telemetry

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vango-dev/flux/internal/errors"
	"github.com/vango-dev/flux/pkg/flux"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "flux").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for durations.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "flux",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors for flux.
type Metrics struct {
	dispatchesTotal  *prometheus.CounterVec
	dispatchDuration *prometheus.HistogramVec
	mountsTotal      *prometheus.CounterVec
	mountDuration    prometheus.Histogram
}

// NewMetrics creates and registers the flux collectors.
//
// Metrics collected:
//   - flux_dispatches_total: Counter of dispatches by action and status
//   - flux_dispatch_duration_seconds: Histogram of dispatch duration by action
//   - flux_mounts_total: Counter of mounted components by component and result code
//   - flux_mount_duration_seconds: Histogram of mount+render duration
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		dispatchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dispatches_total",
			Help:        "Total number of actions dispatched",
			ConstLabels: config.ConstLabels,
		}, []string{"action", "status"}),

		dispatchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dispatch_duration_seconds",
			Help:        "Dispatch duration including subscriber fan-out, in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"action"}),

		mountsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mounts_total",
			Help:        "Total number of components processed by RenderDOM",
			ConstLabels: config.ConstLabels,
		}, []string{"component", "code"}),

		mountDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mount_duration_seconds",
			Help:        "Component mount and render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

// Middleware returns dispatch middleware recording counts and durations.
// A panicking transform is counted with status "panic" and re-panicked.
func (m *Metrics) Middleware() flux.Middleware {
	return func(ctx context.Context, a *flux.Action, next func(context.Context)) {
		name := a.String()
		start := time.Now()
		status := "panic"
		defer func() {
			m.dispatchDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
			m.dispatchesTotal.WithLabelValues(name, status).Inc()
		}()
		next(ctx)
		status = "success"
	}
}

// ObserveMount implements component.MountObserver.
func (m *Metrics) ObserveMount(component string, elapsed time.Duration, err error) {
	code := "ok"
	if err != nil {
		code = errors.Code(err)
		if code == "" {
			code = "unknown"
		}
	}
	m.mountsTotal.WithLabelValues(component, code).Inc()
	m.mountDuration.Observe(elapsed.Seconds())
}
