package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Loot metric names
const (
	MetricNameLootDraws      = "loot_draws_total"
	MetricNameLootEmptyDraws = "loot_empty_draws_total"
	MetricNameChestOpens     = "chest_opens_total"
	MetricNameChestBatchSize = "chest_batch_size"
	MetricNameSessionsActive = "loot_sessions_active"
	MetricNameHistoryErrors  = "drop_history_errors_total"
	MetricNameCatalogReloads = "catalog_reloads_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Loot metric help text
const (
	HelpTextLootDraws      = "Total number of successful loot draws"
	HelpTextLootEmptyDraws = "Total number of draws that produced no loot"
	HelpTextChestOpens     = "Total number of chests opened"
	HelpTextChestBatchSize = "Number of items produced per chest opening"
	HelpTextSessionsActive = "Current number of live simulator sessions"
	HelpTextHistoryErrors  = "Total number of failed drop history writes"
	HelpTextCatalogReloads = "Total number of catalog reload attempts"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelChest  = "chest"
	LabelRarity = "rarity"
	LabelResult = "result"
)

// Catalog reload results
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// UnmatchedRoute labels requests that did not hit a registered route.
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// BatchSizeBuckets covers every batch a chest can produce with the default
// table (up to twice the largest MaxRolls).
var BatchSizeBuckets = []float64{0, 1, 2, 3, 4, 5, 6, 8, 10, 15, 20}
