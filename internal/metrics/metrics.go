package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Loot Metrics
var (
	LootDraws = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootDraws,
			Help: HelpTextLootDraws,
		},
		[]string{LabelChest, LabelRarity},
	)

	LootEmptyDraws = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootEmptyDraws,
			Help: HelpTextLootEmptyDraws,
		},
		[]string{LabelChest},
	)

	ChestOpens = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChestOpens,
			Help: HelpTextChestOpens,
		},
		[]string{LabelChest},
	)

	ChestBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameChestBatchSize,
			Help:    HelpTextChestBatchSize,
			Buckets: BatchSizeBuckets,
		},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSessionsActive,
			Help: HelpTextSessionsActive,
		},
	)

	HistoryErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHistoryErrors,
			Help: HelpTextHistoryErrors,
		},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogReloads,
			Help: HelpTextCatalogReloads,
		},
		[]string{LabelResult},
	)
)

// RecordOpening records one chest opening. drawn is the number of draws
// attempted and items the non-empty results.
func RecordOpening(chest string, drawn int, items []string) {
	ChestOpens.WithLabelValues(chest).Inc()
	ChestBatchSize.Observe(float64(len(items)))
	for _, item := range items {
		LootDraws.WithLabelValues(chest, item).Inc()
	}
	if empty := drawn - len(items); empty > 0 {
		LootEmptyDraws.WithLabelValues(chest).Add(float64(empty))
	}
}

// RecordDraw records a single draw outside of a chest opening.
func RecordDraw(chest, item string, ok bool) {
	if !ok {
		LootEmptyDraws.WithLabelValues(chest).Inc()
		return
	}
	LootDraws.WithLabelValues(chest, item).Inc()
}
