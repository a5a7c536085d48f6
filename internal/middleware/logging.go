package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/metrics"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/utils"
)

// unmatchedRoute labels requests that matched no route
const unmatchedRoute = "unmatched"

// RequestLogger records every request in the HTTP metrics and, when logRequests
// is set, writes one log line per request.
func RequestLogger(logRequests bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)

			metrics.ObserveHTTPRequest(r.Method, routePattern(r), status, elapsed)

			if logRequests {
				utils.LogHTTPRequest(
					chimiddleware.GetReqID(r.Context()),
					r.Method,
					r.URL.Path,
					r.RemoteAddr,
					r.UserAgent(),
					status,
					elapsed,
				)
			}
		})
	}
}

// routePattern returns the chi pattern that served r
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}
