package telemetry

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// ---------------------------------------------------------------------------
// Registration
// ---------------------------------------------------------------------------

func TestMetrics_AllRegistered(t *testing.T) {
	cases := []struct {
		name string
		c    prometheus.Collector
	}{
		{"http_requests_total", HTTPRequestsTotal},
		{"http_request_duration_seconds", HTTPRequestDuration},
		{"access_code_redemptions_total", AccessCodeRedemptionsTotal},
		{"tests_generated_total", TestsGeneratedTotal},
		{"content_store_request_duration_seconds", ContentStoreRequestDuration},
		{"sessions_purged_total", SessionsPurgedTotal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := prometheus.DefaultRegisterer.Register(tc.c)
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				t.Errorf("%s: expected AlreadyRegisteredError, got %v", tc.name, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Recording helpers
// ---------------------------------------------------------------------------

func TestObserveContentStoreRequest(t *testing.T) {
	before := testutil.CollectAndCount(ContentStoreRequestDuration)

	ObserveContentStoreRequest("list_rows_test", 200, 150*time.Millisecond)
	ObserveContentStoreRequest("list_rows_test", 0, time.Second)

	after := testutil.CollectAndCount(ContentStoreRequestDuration)
	if after-before != 2 {
		t.Errorf("expected 2 new series, got %d", after-before)
	}
}

func TestRedemptionCounter(t *testing.T) {
	c := AccessCodeRedemptionsTotal.WithLabelValues(RedemptionExpired)
	before := testutil.ToFloat64(c)
	c.Inc()
	if got := testutil.ToFloat64(c); got != before+1 {
		t.Errorf("counter = %v, want %v", got, before+1)
	}
}
