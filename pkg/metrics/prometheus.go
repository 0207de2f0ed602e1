// Package metrics provides Prometheus metrics for the advent solvers.
package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the solver metrics and the registry they live in.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	constLabels      map[string]string
	registry         *prometheus.Registry

	// Answers produced, by day, dataset label and part
	answers *prometheus.CounterVec
	// Failures, by day and the stage that failed
	errors *prometheus.CounterVec
	// Time spent inside a solver
	solveDuration *prometheus.HistogramVec
	// Size of each dataset read
	inputBytes *prometheus.GaugeVec
	// Example answers that disagreed with the published ones
	exampleMismatches *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager. Without WithPrometheusRegistry it
// registers into a fresh private registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "advent",
		subsystem:        "solver",
		histogramBuckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000},
		enabled:          true,
		constLabels:      make(map[string]string),
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.answers = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "answers_total",
		Help:        "Total number of answers computed",
		ConstLabels: m.constLabels,
	}, []string{"day", "label", "part"})

	m.errors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "errors_total",
		Help:        "Total number of failed runs by stage",
		ConstLabels: m.constLabels,
	}, []string{"day", "stage"})

	m.solveDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "duration_milliseconds",
		Help:        "Histogram of time spent solving one part in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"day", "part"})

	m.inputBytes = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "input_bytes",
		Help:        "Size of the last dataset read in bytes",
		ConstLabels: m.constLabels,
	}, []string{"day", "label"})

	m.exampleMismatches = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "example_mismatches_total",
		Help:        "Total number of example answers that differ from the published ones",
		ConstLabels: m.constLabels,
	}, []string{"day", "part"})
}

// RecordAnswer counts a computed answer.
func (m *Manager) RecordAnswer(day int, label string, part int) {
	if !m.enabled {
		return
	}
	m.answers.WithLabelValues(strconv.Itoa(day), label, strconv.Itoa(part)).Inc()
}

// RecordError counts a failure at stage.
func (m *Manager) RecordError(day int, stage string) {
	if !m.enabled {
		return
	}
	m.errors.WithLabelValues(strconv.Itoa(day), stage).Inc()
}

// RecordSolveDuration records solver time in milliseconds.
func (m *Manager) RecordSolveDuration(day, part int, ms float64) {
	if !m.enabled {
		return
	}
	m.solveDuration.WithLabelValues(strconv.Itoa(day), strconv.Itoa(part)).Observe(ms)
}

// UpdateInputBytes sets the size of a dataset.
func (m *Manager) UpdateInputBytes(day int, label string, n int) {
	if !m.enabled {
		return
	}
	m.inputBytes.WithLabelValues(strconv.Itoa(day), label).Set(float64(n))
}

// RecordExampleMismatch counts an example answer that failed verification.
func (m *Manager) RecordExampleMismatch(day, part int) {
	if !m.enabled {
		return
	}
	m.exampleMismatches.WithLabelValues(strconv.Itoa(day), strconv.Itoa(part)).Inc()
}

// Registry returns the registry the manager's metrics are registered in.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes every metric in the manager's registry to path in
// the text exposition format read by the node exporter textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

// Default returns the process-wide manager.
func Default() *Manager {
	return globalManager
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
