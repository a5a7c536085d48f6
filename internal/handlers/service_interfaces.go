// service_interfaces.go

// Package handlers provides HTTP request handlers and service interfaces for the Sakila API.
// This file defines the service contracts the handlers depend on, so handlers
// can be tested against mocked implementations.
package handlers

import (
	"context"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/models"
)

// CatalogServiceInterface defines the read operations required from CatalogService.
type CatalogServiceInterface interface {
	// TopRentedFilms returns at most five films ordered by rental count.
	TopRentedFilms(ctx context.Context) ([]models.Film, error)

	// TopActors returns at most five actors ordered by the number of stocked films.
	TopActors(ctx context.Context) ([]models.Actor, error)

	// GetFilm retrieves a film by its identifier.
	//
	// Parameters:
	//   - ctx: The context for the operation, which may include deadlines or cancellation
	//   - id: The film identifier
	//
	// Returns:
	//   - The film, or nil when it does not exist
	//   - An error only if database access fails
	GetFilm(ctx context.Context, id int64) (*models.Film, error)

	// GetActor retrieves an actor together with the actor's most rented films.
	//
	// Parameters:
	//   - ctx: The context for the operation, which may include deadlines or cancellation
	//   - id: The actor identifier
	//
	// Returns:
	//   - The actor detail, or nil when the actor does not exist
	//   - An error only if database access fails
	GetActor(ctx context.Context, id int64) (*models.ActorDetail, error)

	// SearchFilms returns the films whose attribute selected by by contains q.
	SearchFilms(ctx context.Context, by, q string) ([]models.FilmSearchResult, error)
}

// RentalServiceInterface defines the write operation required from RentalService.
type RentalServiceInterface interface {
	// Rent rents one available copy of the requested film.
	//
	// Returns:
	//   - The rent result on success
	//   - An AppError carrying the HTTP status of the failure
	Rent(ctx context.Context, req *models.RentRequest) (*models.RentResult, error)
}
