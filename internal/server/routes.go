package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/constants"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/metrics"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/middleware"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/utils"
)

// SetupRoutes configures the routes for the application.
//
// The configured routes include:
// - Health check, version and metrics endpoints
// - Film listing, detail, search and rent endpoints
// - Actor listing and detail endpoints
//
// Detail routes only match numeric identifiers; anything else is a 404.
func (s *Server) SetupRoutes() {
	r := chi.NewRouter()

	allowedOrigins := s.Config.CORS.AllowedOrigins
	log.Info().Strs("allowed_origins", allowedOrigins).Msg("Using CORS allowed origins")

	// Base middleware
	r.Use(middleware.RequestID())
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(s.Config.Logging.RequestLog))
	r.Use(middleware.Recovery())
	r.Use(corsMiddleware(allowedOrigins))
	r.Use(middleware.SecurityHeaders())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.NotFound(w, constants.MsgRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.Error(w, http.StatusMethodNotAllowed, constants.CodeBadRequest, constants.MsgMethodNotAllowed, nil)
	})

	// Health check, version and metrics routes
	r.Group(func(r chi.Router) {
		r.Get(constants.HealthPath, s.handleHealth)

		r.Get(constants.VersionPath, func(w http.ResponseWriter, r *http.Request) {
			utils.JSON(w, http.StatusOK, map[string]string{
				"version":     s.Config.App.Version,
				"environment": s.Config.App.Environment,
			})
		})

		r.Method(http.MethodGet, constants.MetricsPath, metrics.Handler())
	})

	// API routes
	r.Group(func(r chi.Router) {
		r.Use(chimiddleware.NoCache)

		r.Get(constants.FilmsTopRented, s.Handlers.FilmHandler.TopRented)
		r.Get(constants.FilmsSearchPath, s.Handlers.FilmHandler.Search)
		r.Post(constants.FilmsRentPath, s.Handlers.RentalHandler.Rent)
		r.Get(constants.FilmDetailPattern, s.Handlers.FilmHandler.GetFilm)

		r.Get(constants.ActorsTopPath, s.Handlers.ActorHandler.Top)
		r.Get(constants.ActorDetailPattern, s.Handlers.ActorHandler.GetActor)
	})

	s.router = r
}

// GetRouter returns the configured router.
func (s *Server) GetRouter() chi.Router {
	return s.router
}

// handleHealth reports whether the database answers, along with pool usage
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.Db.HealthCheck(r.Context()); err != nil {
		log.Error().Err(err).Msg("Health check failed")
		utils.ServiceUnavailable(w, constants.MsgServiceUnhealthy)
		return
	}

	stats := s.Db.Stats()
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"version": s.Config.App.Version,
		"database": map[string]int{
			"open_connections": stats.OpenConnections,
			"in_use":           stats.InUse,
			"idle":             stats.Idle,
		},
	})
}

// corsMiddleware creates a CORS middleware for the allowed origins.
// A "*" entry allows every origin. Preflight requests are answered with 204
// and never reach the router.
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAll := utils.ContainsString(allowedOrigins, constants.CORSAllowAllOrigins)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get(constants.HeaderOrigin)
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			switch {
			case allowAll:
				w.Header().Set(constants.HeaderAccessControlAllowOrigin, constants.CORSAllowAllOrigins)
			case utils.ContainsString(allowedOrigins, origin):
				w.Header().Set(constants.HeaderAccessControlAllowOrigin, origin)
				w.Header().Add(constants.HeaderVary, constants.HeaderOrigin)
			default:
				// Origin is not allowed, continue without CORS headers
				next.ServeHTTP(w, r)
				return
			}

			if r.Method != http.MethodOptions || r.Header.Get(constants.HeaderAccessControlRequestMethod) == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set(constants.HeaderAccessControlAllowMethods, constants.CORSAllowMethods)
			w.Header().Set(constants.HeaderAccessControlAllowHeaders, constants.CORSAllowHeaders)
			w.Header().Set(constants.HeaderAccessControlMaxAge, strconv.Itoa(constants.CORSMaxAge))
			w.WriteHeader(http.StatusNoContent)
		})
	}
}
