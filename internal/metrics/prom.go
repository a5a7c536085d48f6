// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sakila_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sakila_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	Rentals = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sakila_rentals_total",
			Help: "Total number of rent attempts by outcome",
		},
		[]string{"outcome"},
	)

	DBQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sakila_db_queries_total",
			Help: "Total number of database queries by operation and status",
		},
		[]string{"operation", "status"},
	)
)

// Handler returns the exposition handler for the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveHTTPRequest records one served request. route is the matched route
// pattern, not the raw path, to keep label cardinality bounded.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveDBQuery records one executed statement
func ObserveDBQuery(operation string, err error) {
	status := statusOK
	if err != nil {
		status = statusError
	}
	DBQueries.WithLabelValues(operation, status).Inc()
}

// ObserveRental records the outcome of a rent attempt
func ObserveRental(outcome string) {
	Rentals.WithLabelValues(outcome).Inc()
}
