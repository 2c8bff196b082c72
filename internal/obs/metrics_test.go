package obs

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Record(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveSearch(3)
	m.ObserveSearch(0)
	m.IncCacheHit("local")
	m.IncCacheMiss()
	m.IncQuote("ok")
	m.IncRateLimitDrops()

	if got := testutil.ToFloat64(m.SearchesTotal); got != 2 {
		t.Errorf("expected 2 searches, got %v", got)
	}
	if got := testutil.ToFloat64(m.CacheHitsTotal.WithLabelValues("local")); got != 1 {
		t.Errorf("expected 1 local hit, got %v", got)
	}
	if got := testutil.ToFloat64(m.QuotesTotal.WithLabelValues("ok")); got != 1 {
		t.Errorf("expected 1 quote, got %v", got)
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveSearch(1)
	m.IncCacheHit("local")
	m.IncCacheMiss()
	m.IncQuote("ok")
	m.IncRateLimitDrops()
	m.ObserveRepository("search", 0.1)
	m.ObserveHTTPRequest("GET", "/health", "200", 0.1)
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.ObserveHTTPRequest("GET", "/health", "200", 0.01)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "http_requests_total") {
		t.Error("expected http_requests_total in exposition")
	}
}
