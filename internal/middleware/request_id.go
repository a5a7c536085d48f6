package middleware

import (
	"context"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/constants"
)

// maxRequestIDLength bounds client supplied request ids before they reach the logs
const maxRequestIDLength = 128

// RequestID keeps the caller's X-Request-ID or generates a UUID, echoes it on
// the response and stores it where chimiddleware.GetReqID finds it.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(constants.HeaderXRequestID)
			if requestID == "" || len(requestID) > maxRequestIDLength {
				requestID = uuid.New().String()
				r.Header.Set(constants.HeaderXRequestID, requestID)
			}

			w.Header().Set(constants.HeaderXRequestID, requestID)

			ctx := context.WithValue(r.Context(), chimiddleware.RequestIDKey, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
