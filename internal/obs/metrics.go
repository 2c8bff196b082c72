package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the service collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	SearchesTotal       prometheus.Counter
	QuotesTotal         *prometheus.CounterVec
	CacheHitsTotal      *prometheus.CounterVec
	CacheMissesTotal    prometheus.Counter
	RateLimitDropsTotal prometheus.Counter
	SearchResults       prometheus.Histogram
	RepositoryLatency   *prometheus.HistogramVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestsTotal   *prometheus.CounterVec
	Registry            *prometheus.Registry
}

// Create Prometheus collectors and register them
func NewMetrics(p *prometheus.Registry) *Metrics {
	m := &Metrics{
		SearchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stays_searches_total",
			Help: "Total number of executed searches",
		}),
		QuotesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stays_quotes_total",
			Help: "Booking quotes by outcome",
		}, []string{"outcome"}),
		CacheHitsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stays_cache_hits_total",
			Help: "Search cache hits by tier",
		}, []string{"tier"}),
		CacheMissesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stays_cache_misses_total",
			Help: "Search cache misses",
		}),
		RateLimitDropsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stays_ratelimit_drops_total",
			Help: "Requests dropped due to rate limiting",
		}),
		SearchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stays_search_results",
			Help:    "Number of listings matched per search",
			Buckets: prometheus.LinearBuckets(0, 2, 10),
		}),
		RepositoryLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stays_repository_latency_seconds",
				Help:    "Latency of repository operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		Registry: p,
	}

	p.MustRegister(
		m.SearchesTotal,
		m.QuotesTotal,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
		m.RateLimitDropsTotal,
		m.SearchResults,
		m.RepositoryLatency,
		m.HTTPRequestDuration,
		m.HTTPRequestsTotal,
	)

	return m
}

func (m *Metrics) ObserveSearch(results int) {
	if m == nil {
		return
	}
	m.SearchesTotal.Inc()
	m.SearchResults.Observe(float64(results))
}

func (m *Metrics) IncQuote(outcome string) {
	if m == nil {
		return
	}
	m.QuotesTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncCacheHit(tier string) {
	if m == nil {
		return
	}
	m.CacheHitsTotal.WithLabelValues(tier).Inc()
}

func (m *Metrics) IncCacheMiss() {
	if m == nil {
		return
	}
	m.CacheMissesTotal.Inc()
}

func (m *Metrics) IncRateLimitDrops() {
	if m == nil {
		return
	}
	m.RateLimitDropsTotal.Inc()
}

func (m *Metrics) ObserveRepository(operation string, seconds float64) {
	if m == nil {
		return
	}
	m.RepositoryLatency.WithLabelValues(operation).Observe(seconds)
}

func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
