package middleware_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/middleware"
)

func TestRecovery(t *testing.T) {
	tests := []struct {
		name           string
		handler        http.Handler
		expectedStatus int
		expectedBody   string
		expectLog      bool
	}{
		{
			name: "No panic occurs",
			handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				if _, err := w.Write([]byte("Success")); err != nil {
					t.Fatalf("failed to write response: %v", err)
				}
			}),
			expectedStatus: http.StatusOK,
			expectedBody:   "Success",
		},
		{
			name: "Panic with error",
			handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(errors.New("test error"))
			}),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"ok":false,"error":"An unexpected error occurred while processing your request","code":"internal_error"}`,
			expectLog:      true,
		},
		{
			name: "Panic with string",
			handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic("test panic")
			}),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"ok":false,"error":"An unexpected error occurred while processing your request","code":"internal_error"}`,
			expectLog:      true,
		},
	}

	// Set up logger to capture logs
	var logBuf bytes.Buffer
	original := log.Logger
	log.Logger = zerolog.New(&logBuf)
	defer func() { log.Logger = original }()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logBuf.Reset()

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/films/top-rented", nil)

			middleware.Recovery()(tt.handler).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedBody, rr.Body.String())
			} else {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}

			if tt.expectLog {
				assert.Contains(t, logBuf.String(), "Panic recovered")
				assert.Contains(t, logBuf.String(), "/api/films/top-rented")
			} else {
				assert.Empty(t, logBuf.String())
			}
		})
	}
}

func TestRecovery_AbortHandlerIsRepanicked(t *testing.T) {
	handler := middleware.Recovery()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
