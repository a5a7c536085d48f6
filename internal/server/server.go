// Package server provides the HTTP server of the Sakila API.
// It handles routing, middleware configuration, and server lifecycle management.
//
// The server owns the connection pool: it is created in NewServer, shared by
// every repository and closed in Shutdown.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/config"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/constants"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/database"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/handlers"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/repository"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/service"
)

// Handlers contains all HTTP handlers for the application.
type Handlers struct {
	// FilmHandler serves the film listing, detail and search routes
	FilmHandler *handlers.FilmHandler

	// ActorHandler serves the actor routes
	ActorHandler *handlers.ActorHandler

	// RentalHandler serves the rent route
	RentalHandler *handlers.RentalHandler
}

// Server represents the API server.
// It encapsulates all server components and handles server lifecycle management,
// including initialization, startup, and graceful shutdown.
type Server struct {
	// Config contains application configuration
	Config *config.AppConfig

	// Db provides health checks and is closed on shutdown
	Db DBHealthChecker

	// router handles HTTP routing
	router chi.Router

	// Handlers contains all HTTP request handlers
	Handlers *Handlers

	// httpServer is the underlying HTTP server
	httpServer *http.Server
}

// NewServer creates a new server instance with all required components.
// It connects the pool, then builds repositories, services, handlers and routes.
//
// Parameters:
//   - cfg: Application configuration including database and server settings
//
// Returns:
//   - A fully initialized Server instance ready to start
//   - An error if the database is unreachable
func NewServer(cfg *config.AppConfig) (*Server, error) {
	pool, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	return NewServerWithDependencies(cfg, pool, newHandlers(cfg, pool)), nil
}

// NewServerWithDependencies creates a server from already built dependencies
// and sets up its routes.
func NewServerWithDependencies(cfg *config.AppConfig, db DBHealthChecker, h *Handlers) *Server {
	s := &Server{
		Config:   cfg,
		Db:       db,
		Handlers: h,
	}

	s.SetupRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.Server.ServerAddress(),
		Handler:      s.GetRouter(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}

	return s
}

// newHandlers wires repositories, services and handlers on top of pool
func newHandlers(cfg *config.AppConfig, pool *database.Pool) *Handlers {
	filmRepo := repository.NewFilmRepository(pool)
	actorRepo := repository.NewActorRepository(pool)
	rentalRepo := repository.NewRentalRepository(pool)

	catalog := service.NewCatalogService(filmRepo, actorRepo, cfg.Database.QueryTimeout)
	rentals := service.NewRentalService(rentalRepo, cfg.Rental.StaffID, cfg.Database.QueryTimeout)

	return &Handlers{
		FilmHandler:   handlers.NewFilmHandler(catalog),
		ActorHandler:  handlers.NewActorHandler(catalog),
		RentalHandler: handlers.NewRentalHandler(rentals),
	}
}

// Start starts the HTTP server and sets up signal handling for graceful shutdown.
// It blocks until the server fails or a SIGINT/SIGTERM is received.
func (s *Server) Start() error {
	// Create a channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info().
			Str("address", s.Config.Server.ServerAddress()).
			Msg("Starting server")

		serverErrors <- s.httpServer.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	// Block until an OS signal or an error is received
	select {
	case err := <-serverErrors:
		s.Db.Close()
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info().
			Str("signal", sig.String()).
			Msg("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), s.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			// Shutdown the server immediately if graceful shutdown fails
			if closeErr := s.httpServer.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests,
// then closes the connection pool.
func (s *Server) Shutdown(ctx context.Context) error {
	// Connections are released even when in-flight requests time out
	defer func() {
		s.Db.Close()
		log.Info().Msg("Database connection closed")
	}()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	log.Info().Msg("Server stopped gracefully")
	return nil
}
