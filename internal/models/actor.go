// Package models provides the data structures returned and accepted by the Sakila API.
// This file contains the actor projections.
package models

// Actor is a read-only projection of an actor with the number of distinct
// films attached to it.
type Actor struct {
	// ID is the unique identifier for this actor
	ID int64 `json:"actor_id" db:"actor_id"`

	// FirstName of the actor
	FirstName string `json:"first_name" db:"first_name"`

	// LastName of the actor
	LastName string `json:"last_name" db:"last_name"`

	// FilmCount is the number of distinct films. The top list counts stocked
	// films only; the detail view counts every film the actor appears in.
	FilmCount int64 `json:"film_count" db:"film_count"`
}

// ActorDetail is the actor detail view with the actor's most rented films.
type ActorDetail struct {
	Actor

	// TopMovies lists up to five films ordered by rental count, never null
	TopMovies []ActorFilm `json:"top_movies"`
}

// NewActorDetail attaches films to actor, normalizing a nil list to empty.
func NewActorDetail(actor *Actor, films []ActorFilm) *ActorDetail {
	if actor == nil {
		return nil
	}
	if films == nil {
		films = []ActorFilm{}
	}
	return &ActorDetail{
		Actor:     *actor,
		TopMovies: films,
	}
}

// ActorFilm is one entry of an actor's top films.
type ActorFilm struct {
	ID          int64  `json:"film_id" db:"film_id"`
	Title       string `json:"title" db:"title"`
	RentalCount int64  `json:"rental_count" db:"rental_count"`
}
