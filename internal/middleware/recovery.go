package middleware

import (
	"net/http"
	"runtime/debug"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/constants"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/utils"
)

// Recovery is a middleware that recovers from panics and returns a 500 Internal Server Error
func Recovery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					// http.ErrAbortHandler is the documented way to abort a response
					if err == http.ErrAbortHandler {
						panic(err)
					}

					utils.LogPanic(err, debug.Stack())
					log.Error().
						Str(constants.RequestIDContextKey, chimiddleware.GetReqID(r.Context())).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Str("remote_addr", r.RemoteAddr).
						Msg("Panic recovered in request handler")

					utils.Error(
						w,
						http.StatusInternalServerError,
						constants.CodeInternalError,
						constants.MsgPanicRecovered,
						nil,
					)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
