// Package metrics provides Prometheus metrics for animation curve nodes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	animcurve "github.com/tphakala/go-animcurve"
)

// Default metrics configuration constants.
const (
	defaultNamespace = "animcurve"
	defaultSubsystem = "node"

	// Bakes take microseconds to milliseconds.
	bucketStart  = 1e-6
	bucketFactor = 4
	bucketCount  = 10
)

// Rebuild result label values.
const (
	resultValid   = "valid"
	resultInvalid = "invalid"
)

// Manager records node rebuild and bake activity. It implements
// animcurve.Recorder and is safe for concurrent use.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	rebuilds      *prometheus.CounterVec
	fallbacks     *prometheus.CounterVec
	bakes         prometheus.Counter
	keyframes     prometheus.Gauge
	tableSamples  prometheus.Gauge
	bakeDurations prometheus.Histogram
}

var _ animcurve.Recorder = (*Manager)(nil)

// NewManager creates a metrics manager and registers its collectors.
// Registering twice on the same registry panics, as with promauto.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        defaultNamespace,
		subsystem:        defaultSubsystem,
		histogramBuckets: prometheus.ExponentialBuckets(bucketStart, bucketFactor, bucketCount),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rebuilds = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "rebuilds_total",
		Help:        "Total number of curve rebuilds by result",
		ConstLabels: m.constLabels,
	}, []string{"result"})

	m.fallbacks = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "fallbacks_total",
		Help:        "Total number of supplied inputs ignored during rebuilds, by feature",
		ConstLabels: m.constLabels,
	}, []string{"feature"})

	m.bakes = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "bakes_total",
		Help:        "Total number of sample tables baked",
		ConstLabels: m.constLabels,
	})

	m.keyframes = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "keyframes",
		Help:        "Number of keyframes in the current curve",
		ConstLabels: m.constLabels,
	})

	m.tableSamples = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "table_samples",
		Help:        "Number of samples in the last baked table",
		ConstLabels: m.constLabels,
	})

	m.bakeDurations = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "bake_duration_seconds",
		Help:        "Time spent baking sample tables",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})
}

// RecordRebuild counts a rebuild.
func (m *Manager) RecordRebuild(valid bool) {
	result := resultValid
	if !valid {
		result = resultInvalid
	}
	m.rebuilds.WithLabelValues(result).Inc()
}

// RecordFallback counts one ignored input feature.
func (m *Manager) RecordFallback(feature string) {
	m.fallbacks.WithLabelValues(feature).Inc()
}

// RecordBake counts a bake and observes its duration.
func (m *Manager) RecordBake(samples int, elapsed time.Duration) {
	m.bakes.Inc()
	m.tableSamples.Set(float64(samples))
	m.bakeDurations.Observe(elapsed.Seconds())
}

// SetKeyframes sets the keyframe gauge.
func (m *Manager) SetKeyframes(n int) {
	m.keyframes.Set(float64(n))
}
