package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vango-dev/ffui/pkg/patch"
)

// Config configures a Collector.
type Config struct {
	// Namespace is the metrics namespace (default: "ffui").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for refresh duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures a Collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "ffui",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector holds the ffui metrics. A nil *Collector is valid and records
// nothing.
type Collector struct {
	patchOps        *prometheus.CounterVec
	refreshDuration prometheus.Histogram
	refreshErrors   *prometheus.CounterVec
	sessionsActive  prometheus.Gauge
	eventsTotal     *prometheus.CounterVec
}

var _ patch.Observer = (*Collector)(nil)

// New creates and registers a Collector. Registering twice with the same
// registry panics, as with any promauto metric.
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Collector{
		patchOps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patch_ops_total",
			Help:        "Total number of live tree operations performed by the patcher",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		refreshDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "refresh_duration_seconds",
			Help:        "Time spent patching the live tree after a state write",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		refreshErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "refresh_errors_total",
			Help:        "Total number of failed refreshes by error code",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),

		sessionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "sessions_active",
			Help:        "Number of live host sessions",
			ConstLabels: config.ConstLabels,
		}),

		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "events_total",
			Help:        "Total number of client events dispatched by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),
	}
}

// Observe implements patch.Observer.
func (c *Collector) Observe(op patch.Op) {
	if c == nil {
		return
	}
	c.patchOps.WithLabelValues(string(op)).Inc()
}

// RecordRefresh records one refresh. code is the error code of a failed
// refresh ("" for success; "unknown" when the error carries none).
func (c *Collector) RecordRefresh(d time.Duration, code string, failed bool) {
	if c == nil {
		return
	}
	c.refreshDuration.Observe(d.Seconds())
	if failed {
		if code == "" {
			code = "unknown"
		}
		c.refreshErrors.WithLabelValues(code).Inc()
	}
}

// SessionStarted increments the active session gauge.
func (c *Collector) SessionStarted() {
	if c != nil {
		c.sessionsActive.Inc()
	}
}

// SessionEnded decrements the active session gauge.
func (c *Collector) SessionEnded() {
	if c != nil {
		c.sessionsActive.Dec()
	}
}

// RecordEvent counts one dispatched client event.
func (c *Collector) RecordEvent(eventType string) {
	if c != nil {
		c.eventsTotal.WithLabelValues(eventType).Inc()
	}
}
