// Package metrics provides Prometheus metrics for the mimic comparison
// engine.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	histogramBuckets []float64

	// Batch metrics
	comparisonsTotal   prometheus.Counter
	flaggedTotal       prometheus.Counter
	skippedTotal       prometheus.Counter
	comparisonLatency  prometheus.Histogram
	alignedSampleCount prometheus.Histogram
	tracesLoaded       prometheus.Counter

	// Operational metrics
	queueSize   prometheus.Gauge
	workerCount prometheus.Gauge
}

// Global metrics manager instance.
var (
	globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager
	initOnce      sync.Once
)

// Init registers all metrics with the default registry. Safe to call
// more than once; only the first call registers.
func Init(opts ...Option) {
	initOnce.Do(func() {
		m := &Manager{
			namespace:        "mimic",
			histogramBuckets: prometheus.DefBuckets,
		}

		for _, opt := range opts {
			opt(m)
		}

		m.comparisonsTotal = promauto.NewCounter(prometheus.CounterOpts{
			Namespace: m.namespace,
			Name:      "comparisons_total",
			Help:      "Number of trace pairs compared.",
		})
		m.flaggedTotal = promauto.NewCounter(prometheus.CounterOpts{
			Namespace: m.namespace,
			Name:      "flagged_pairs_total",
			Help:      "Number of pairs that scored below the similarity threshold.",
		})
		m.skippedTotal = promauto.NewCounter(prometheus.CounterOpts{
			Namespace: m.namespace,
			Name:      "skipped_pairs_total",
			Help:      "Number of pairs skipped by trust or self-comparison rules.",
		})
		m.comparisonLatency = promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: m.namespace,
			Name:      "comparison_duration_ms",
			Help:      "Latency of a single pair comparison in milliseconds.",
			Buckets:   m.histogramBuckets,
		})
		m.alignedSampleCount = promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: m.namespace,
			Name:      "aligned_samples",
			Help:      "Number of samples retained per alignment.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 12),
		})
		m.tracesLoaded = promauto.NewCounter(prometheus.CounterOpts{
			Namespace: m.namespace,
			Name:      "traces_loaded_total",
			Help:      "Number of traces loaded for comparison.",
		})
		m.queueSize = promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: m.namespace,
			Name:      "pair_queue_size",
			Help:      "Current number of queued candidate pairs.",
		})
		m.workerCount = promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: m.namespace,
			Name:      "worker_count",
			Help:      "Number of comparison workers in the pool.",
		})

		globalManager = m
	})
}

// get returns the global manager, initializing with defaults if needed.
func get() *Manager {
	if globalManager == nil {
		Init()
	}
	return globalManager
}

// Handler returns the Prometheus exposition handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordComparison counts one compared pair.
func RecordComparison() { get().comparisonsTotal.Inc() }

// RecordFlagged counts one pair under the threshold.
func RecordFlagged() { get().flaggedTotal.Inc() }

// RecordSkipped counts one pair excluded by trust or self rules.
func RecordSkipped() { get().skippedTotal.Inc() }

// RecordComparisonLatency observes one pair's comparison latency in ms.
func RecordComparisonLatency(ms float64) { get().comparisonLatency.Observe(ms) }

// ObserveAlignedSamples observes how many samples an alignment retained.
func ObserveAlignedSamples(n int) { get().alignedSampleCount.Observe(float64(n)) }

// RecordTracesLoaded counts loaded traces.
func RecordTracesLoaded(n int) { get().tracesLoaded.Add(float64(n)) }

// UpdateQueueSize sets the current pair queue length.
func UpdateQueueSize(n int) { get().queueSize.Set(float64(n)) }

// UpdateWorkerCount sets the comparison worker pool size.
func UpdateWorkerCount(n int) { get().workerCount.Set(float64(n)) }
