package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hotelsearch_requests_total",
		Help: "Total HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	RequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hotelsearch_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"method", "route"})

	SearchResults = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "hotelsearch_search_results",
		Help:    "Number of ranked results per search",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
	})

	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hotelsearch_cache_hits_total",
		Help: "Total search cache hits",
	})

	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hotelsearch_cache_misses_total",
		Help: "Total search cache misses",
	})

	MutationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hotelsearch_mutations_total",
		Help: "Total hotel mutations by kind",
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDurationSeconds,
		SearchResults,
		CacheHitsTotal,
		CacheMissesTotal,
		MutationsTotal,
	)
}

// Handler exposes the registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
