package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	lookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cityform_lookups_total",
			Help: "Upstream suggestion lookups by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	lookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cityform_lookup_duration_seconds",
			Help:    "Upstream suggestion lookup duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"source"},
	)

	staleResultsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cityform_stale_results_total",
			Help: "Lookup results discarded because a newer input superseded them",
		},
	)

	cacheResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cityform_cache_results_total",
			Help: "Lookup cache hits and misses",
		},
		[]string{"source", "result"},
	)

	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cityform_enquiry_submissions_total",
			Help: "Enquiry submissions by outcome",
		},
		[]string{"outcome"},
	)
)

// RecordLookup records one upstream lookup. outcome is "ok", "empty" or "error".
func RecordLookup(source, outcome string, d time.Duration) {
	lookupsTotal.WithLabelValues(source, outcome).Inc()
	lookupDuration.WithLabelValues(source).Observe(d.Seconds())
}

func RecordStaleResult() {
	staleResultsTotal.Inc()
}

func RecordCacheHit(source string) {
	cacheResultsTotal.WithLabelValues(source, "hit").Inc()
}

func RecordCacheMiss(source string) {
	cacheResultsTotal.WithLabelValues(source, "miss").Inc()
}

// RecordSubmission outcome is "accepted", "invalid" or "failed".
func RecordSubmission(outcome string) {
	submissionsTotal.WithLabelValues(outcome).Inc()
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
