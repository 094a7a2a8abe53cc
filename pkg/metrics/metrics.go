// Package metrics exposes Prometheus collectors for the widget bridge.
//
// All methods are safe on a nil *Metrics, so components can take an
// optional collector without branching.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config configures the collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "sdui").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry receives the collectors. Default: a fresh registry.
	Registry *prometheus.Registry
}

// Option configures the collectors.
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

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// Metrics holds the bridge collectors.
type Metrics struct {
	registry *prometheus.Registry

	dispatches      *prometheus.CounterVec
	iconResolutions *prometheus.CounterVec
	registrations   prometheus.Counter
	lookups         *prometheus.CounterVec
	renderDuration  prometheus.Histogram
}

// New creates and registers the collectors.
func New(opts ...Option) *Metrics {
	cfg := Config{
		Namespace: "sdui",
		Buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}
	factory := promauto.With(cfg.Registry)

	return &Metrics{
		registry: cfg.Registry,

		dispatches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "dispatches_total",
			Help:        "Events dispatched to the runtime, by event name",
			ConstLabels: cfg.ConstLabels,
		}, []string{"event"}),

		iconResolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "icon_resolutions_total",
			Help:        "Settled icon lookups, by outcome (found, missing, failed)",
			ConstLabels: cfg.ConstLabels,
		}, []string{"outcome"}),

		registrations: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "registrations_total",
			Help:        "Component registrations, including overwrites",
			ConstLabels: cfg.ConstLabels,
		}),

		lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "tag_lookups_total",
			Help:        "Registry lookups made by the tree walker, by result (hit, miss)",
			ConstLabels: cfg.ConstLabels,
		}, []string{"result"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Duration of one descriptor tree render pass",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}),
	}
}

// Dispatch counts one dispatched event.
func (m *Metrics) Dispatch(event string) {
	if m == nil {
		return
	}
	m.dispatches.WithLabelValues(event).Inc()
}

// IconResolved counts one settled icon lookup.
func (m *Metrics) IconResolved(outcome string) {
	if m == nil {
		return
	}
	m.iconResolutions.WithLabelValues(outcome).Inc()
}

// Registered counts one registration.
func (m *Metrics) Registered() {
	if m == nil {
		return
	}
	m.registrations.Inc()
}

// Lookup counts one registry lookup.
func (m *Metrics) Lookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.lookups.WithLabelValues(result).Inc()
}

// ObserveRender records the duration of a render pass.
func (m *Metrics) ObserveRender(d time.Duration) {
	if m == nil {
		return
	}
	m.renderDuration.Observe(d.Seconds())
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the collected metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
