// Package telemetry holds the Prometheus collectors of the service. All
// metrics register against the default registry and are served by the
// router on the configured metrics path.
//
// HTTP metrics use the gin route template as the path label so that path
// parameters such as test ids do not create new series.
package telemetry

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics, labelled by method, route template and status code.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed, by method, route template, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies, by method and route template.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)
)

// Redemption results used as the "result" label.
const (
	RedemptionSuccess       = "success"
	RedemptionInvalid       = "invalid"
	RedemptionInactive      = "inactive"
	RedemptionExpired       = "expired"
	RedemptionUsageExceeded = "usage_exceeded"
	RedemptionError         = "error"
)

// AccessCodeRedemptionsTotal counts redemption attempts by outcome.
//
//	sum by (result) (rate(access_code_redemptions_total[1h]))
var AccessCodeRedemptionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "access_code_redemptions_total",
		Help: "Total number of access code redemption attempts, by result.",
	},
	[]string{"result"},
)

// TestsGeneratedTotal counts randomized tests handed out, by course.
var TestsGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tests_generated_total",
		Help: "Total number of randomized practice tests generated, by course.",
	},
	[]string{"course_id"},
)

// ContentStoreRequestDuration times Baserow API calls by operation and status.
// Status "0" means the request failed before a response arrived.
var ContentStoreRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "content_store_request_duration_seconds",
		Help:    "Latency of content store (Baserow) API requests, by operation and response status.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	},
	[]string{"operation", "status"},
)

// ObserveContentStoreRequest matches the baserow.Observer signature.
func ObserveContentStoreRequest(operation string, status int, elapsed time.Duration) {
	ContentStoreRequestDuration.WithLabelValues(operation, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// SessionsPurgedTotal counts expired sessions removed by the admin purge.
var SessionsPurgedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "sessions_purged_total",
		Help: "Total number of expired sessions deleted by purge runs.",
	},
)
