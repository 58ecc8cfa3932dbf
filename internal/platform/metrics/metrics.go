// Package metrics declares the service's Prometheus instruments. They are
// registered on the default registry and exposed through the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, path, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parking_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration records request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parking_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// SearchesTotal counts search requests by outcome: ok, invalid, or error.
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parking_searches_total",
			Help: "Total number of parking searches by outcome",
		},
		[]string{"outcome"},
	)

	// SearchDuration records end-to-end search latency in seconds, catalog
	// fetch included.
	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "parking_search_duration_seconds",
			Help:    "Parking search latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// FeasibleLocations records how many locations each search returned.
	FeasibleLocations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "parking_search_feasible_locations",
			Help:    "Number of feasible locations per search",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)
)
