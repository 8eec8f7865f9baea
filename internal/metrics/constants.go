package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPResponseSize     = "http_response_size_bytes"
)

// Business metric names
const (
	MetricNameUsersRegistered   = "users_registered_total"
	MetricNameLoginAttempts     = "login_attempts_total"
	MetricNameCharactersCreated = "characters_created_total"
	MetricNameCharactersDeleted = "characters_deleted_total"
	MetricNameInventoryItems    = "inventory_items_added_total"
	MetricNameSessionsPurged    = "sessions_purged_total"
	MetricNameCSRFRejected      = "csrf_rejections_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPResponseSize     = "HTTP response body size in bytes"
)

// Business metric help text
const (
	HelpTextUsersRegistered   = "Total number of accounts registered"
	HelpTextLoginAttempts     = "Total number of login attempts by result"
	HelpTextCharactersCreated = "Total number of characters created, by class"
	HelpTextCharactersDeleted = "Total number of characters deleted"
	HelpTextInventoryItems    = "Total number of inventory items granted, by source"
	HelpTextSessionsPurged    = "Total number of expired sessions removed by the sweeper"
	HelpTextCSRFRejected      = "Total number of mutating requests rejected for a missing or wrong CSRF token"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelResult = "result"
	LabelClass  = "class"
	LabelSource = "source"
)

// Login attempt results
const (
	LoginResultSuccess = "success"
	LoginResultFailure = "failure"
)

// Inventory item sources
const (
	ItemSourceStarting = "starting_item"
	ItemSourceWeapon   = "weapon"
	ItemSourceArmor    = "armor"
	ItemSourceManual   = "manual"
)

// UnmatchedRoute labels requests that did not hit a registered route
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ResponseSizeBuckets spans 64B to 256KiB in powers of four
var ResponseSizeBuckets = []float64{64, 256, 1024, 4096, 16384, 65536, 262144}
