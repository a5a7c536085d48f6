// Package models provides the data structures returned and accepted by the Sakila API.
// This file contains the film projections used by listing, detail and search views.
package models

// Film is a read-only projection of a film row with its representative
// category and aggregate rental count.
type Film struct {
	// ID is the unique identifier for this film
	ID int64 `json:"film_id" db:"film_id"`

	// Title is the film title as stored (upper case in the sample dataset)
	Title string `json:"title" db:"title"`

	// Description is the optional film synopsis
	Description *string `json:"description" db:"description"`

	// ReleaseYear is the optional release year
	ReleaseYear *int64 `json:"release_year" db:"release_year"`

	// Length is the optional running time in minutes
	Length *int64 `json:"length" db:"length"`

	// Rating is the optional MPAA rating (G, PG, PG-13, R, NC-17)
	Rating *string `json:"rating" db:"rating"`

	// Category is the lexicographically smallest category name, or null
	// when the film has no category
	Category *string `json:"category" db:"category"`

	// RentalCount is the number of rentals across every copy of the film
	RentalCount int64 `json:"rental_count" db:"rental_count"`
}

// FilmSearchResult is a film as returned by the search endpoint, carrying the
// names of its actors.
type FilmSearchResult struct {
	Film

	// Actors holds the distinct "first last" names ordered by name and joined
	// with ", "; null when the film has no actors
	Actors *string `json:"actors" db:"actors"`
}
