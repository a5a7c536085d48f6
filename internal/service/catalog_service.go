// Package service provides business logic implementations for the Sakila API.
// It contains services that orchestrate operations across repositories.
//
// This file implements the catalog service, which serves the read-only film
// and actor views.
package service

import (
	"context"
	"time"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/constants"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/models"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/repository"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/utils"
)

// CatalogService handles the film and actor listings, details and search.
type CatalogService struct {
	films        repository.FilmRepository
	actors       repository.ActorRepository
	queryTimeout time.Duration
}

// NewCatalogService creates a new CatalogService with the specified dependencies.
//
// Parameters:
//   - films: Repository for film reads
//   - actors: Repository for actor reads
//   - queryTimeout: Upper bound for the database work of one call; zero disables it
//
// Returns:
//   - A new CatalogService instance
func NewCatalogService(films repository.FilmRepository, actors repository.ActorRepository, queryTimeout time.Duration) *CatalogService {
	return &CatalogService{
		films:        films,
		actors:       actors,
		queryTimeout: queryTimeout,
	}
}

// TopRentedFilms returns the five most rented films
func (s *CatalogService) TopRentedFilms(ctx context.Context) ([]models.Film, error) {
	ctx, cancel := withQueryTimeout(ctx, s.queryTimeout)
	defer cancel()

	return s.films.TopRented(ctx, constants.TopListLimit)
}

// TopActors returns the five actors appearing in the most stocked films
func (s *CatalogService) TopActors(ctx context.Context) ([]models.Actor, error) {
	ctx, cancel := withQueryTimeout(ctx, s.queryTimeout)
	defer cancel()

	return s.actors.Top(ctx, constants.TopListLimit)
}

// GetFilm returns a film by ID, or nil without error when it does not exist.
func (s *CatalogService) GetFilm(ctx context.Context, id int64) (*models.Film, error) {
	ctx, cancel := withQueryTimeout(ctx, s.queryTimeout)
	defer cancel()

	film, err := s.films.GetByID(ctx, id)
	if err != nil {
		if utils.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}

	return film, nil
}

// GetActor returns an actor with its top films, or nil without error when the
// actor does not exist. The top films are only queried for an existing actor.
func (s *CatalogService) GetActor(ctx context.Context, id int64) (*models.ActorDetail, error) {
	ctx, cancel := withQueryTimeout(ctx, s.queryTimeout)
	defer cancel()

	actor, err := s.actors.GetByID(ctx, id)
	if err != nil {
		if utils.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}

	films, err := s.actors.TopFilms(ctx, id, constants.TopListLimit)
	if err != nil {
		return nil, err
	}

	return models.NewActorDetail(actor, films), nil
}

// SearchFilms returns the films matching q in the attribute selected by by.
// Unknown modes and blank queries return every film.
func (s *CatalogService) SearchFilms(ctx context.Context, by, q string) ([]models.FilmSearchResult, error) {
	ctx, cancel := withQueryTimeout(ctx, s.queryTimeout)
	defer cancel()

	// q loses surrounding whitespace so a padded or blank query behaves like
	// its trimmed form; inner spaces are part of the search term
	return s.films.Search(ctx, repository.NewSearchFilter(by, q))
}

// withQueryTimeout bounds ctx by timeout when timeout is positive
func withQueryTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
