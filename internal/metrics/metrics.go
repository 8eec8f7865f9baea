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

	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPResponseSize,
			Help:    HelpTextHTTPResponseSize,
			Buckets: ResponseSizeBuckets,
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

// Account Metrics
var (
	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUsersRegistered,
			Help: HelpTextUsersRegistered,
		},
	)

	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLoginAttempts,
			Help: HelpTextLoginAttempts,
		},
		[]string{LabelResult},
	)

	SessionsPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsPurged,
			Help: HelpTextSessionsPurged,
		},
	)

	CSRFRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCSRFRejected,
			Help: HelpTextCSRFRejected,
		},
	)
)

// Character Metrics
var (
	CharactersCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCharactersCreated,
			Help: HelpTextCharactersCreated,
		},
		[]string{LabelClass},
	)

	CharactersDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCharactersDeleted,
			Help: HelpTextCharactersDeleted,
		},
	)

	InventoryItemsAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInventoryItems,
			Help: HelpTextInventoryItems,
		},
		[]string{LabelSource},
	)
)
