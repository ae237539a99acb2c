package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fleet-savings-service/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricRouteBucketsUnknownPaths(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/health", "/health"},
		{"/stops", "/stops"},
		{"/savings", "/savings"},
		{"/metrics", "/metrics"},
		{"/", "other"},
		{"/wp-login.php", "other"},
		{"/savings/extra", "other"},
	}

	for _, c := range cases {
		if got := metricRoute(c.path); got != c.want {
			t.Errorf("metricRoute(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestLoggingMiddlewareLabelsUnmatchedPathsAsOther(t *testing.T) {
	h := loggingMiddleware(http.NotFoundHandler())

	counter := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "other", "404")
	before := testutil.ToFloat64(counter)

	req := httptest.NewRequest(http.MethodGet, "/wp-login.php", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Fatalf("other-bucket count = %v, want %v", got, before+1)
	}
}
