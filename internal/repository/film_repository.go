package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/constants"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/database"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/models"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/utils"
)

// FilmRepository defines methods for reading films
type FilmRepository interface {
	TopRented(ctx context.Context, limit int) ([]models.Film, error)
	GetByID(ctx context.Context, id int64) (*models.Film, error)
	Search(ctx context.Context, filter SearchFilter) ([]models.FilmSearchResult, error)
}

// MySQLFilmRepository is a MySQL implementation of FilmRepository
type MySQLFilmRepository struct {
	db database.Querier
}

// NewFilmRepository creates a new FilmRepository
func NewFilmRepository(db database.Querier) FilmRepository {
	return &MySQLFilmRepository{
		db: db,
	}
}

// filmColumns are the film attributes shared by every film projection
const filmColumns = `f.film_id, f.title, f.description, f.release_year, f.length, f.rating`

// filmCategorySubquery picks the lexicographically smallest category name
const filmCategorySubquery = `(
		SELECT MIN(c.name)
		FROM film_category fc
		JOIN category c ON c.category_id = fc.category_id
		WHERE fc.film_id = f.film_id
	)`

// TopRented retrieves the most rented films, ties broken by title
func (r *MySQLFilmRepository) TopRented(ctx context.Context, limit int) ([]models.Film, error) {
	startTime := time.Now()

	query := `
		SELECT ` + filmColumns + `,
			` + filmCategorySubquery + ` AS category,
			COUNT(r.rental_id) AS rental_count
		FROM film f
		JOIN inventory i ON i.film_id = f.film_id
		JOIN rental r ON r.inventory_id = i.inventory_id
		GROUP BY f.film_id, f.title, f.description, f.release_year, f.length, f.rating
		ORDER BY rental_count DESC, f.title ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	observeQuery(constants.OpTopRentedFilms, query, []interface{}{limit}, startTime, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query top rented films: %w", err)
	}
	defer rows.Close()

	films := []models.Film{}
	for rows.Next() {
		var film models.Film
		if err := scanFilm(rows, &film); err != nil {
			return nil, fmt.Errorf("failed to scan film row: %w", err)
		}
		films = append(films, film)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating film rows: %w", err)
	}

	return films, nil
}

// GetByID retrieves a film by ID. Films without rentals or categories are
// still returned with a zero count and a null category.
func (r *MySQLFilmRepository) GetByID(ctx context.Context, id int64) (*models.Film, error) {
	startTime := time.Now()

	query := `
		SELECT ` + filmColumns + `,
			` + filmCategorySubquery + ` AS category,
			COUNT(r.rental_id) AS rental_count
		FROM film f
		LEFT JOIN inventory i ON i.film_id = f.film_id
		LEFT JOIN rental r ON r.inventory_id = i.inventory_id
		WHERE f.film_id = ?
		GROUP BY f.film_id, f.title, f.description, f.release_year, f.length, f.rating
	`

	film := &models.Film{}
	err := scanFilm(r.db.QueryRowContext(ctx, query, id), film)
	observeQuery(constants.OpFilmByID, query, []interface{}{id}, startTime, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("Film", id)
		}
		return nil, fmt.Errorf("failed to get film by ID: %w", err)
	}

	return film, nil
}

// Search retrieves every film matching filter ordered by title
func (r *MySQLFilmRepository) Search(ctx context.Context, filter SearchFilter) ([]models.FilmSearchResult, error) {
	startTime := time.Now()

	predicate, args := filter.Predicate()

	query := `
		SELECT ` + filmColumns + `,
			` + filmCategorySubquery + ` AS category,
			COALESCE((
				SELECT COUNT(r.rental_id)
				FROM inventory i
				JOIN rental r ON r.inventory_id = i.inventory_id
				WHERE i.film_id = f.film_id
			), 0) AS rental_count,
			(
				SELECT GROUP_CONCAT(DISTINCT CONCAT(a.first_name, ' ', a.last_name)
					ORDER BY CONCAT(a.first_name, ' ', a.last_name)
					SEPARATOR '` + constants.ActorNameSeparator + `')
				FROM film_actor fa
				JOIN actor a ON a.actor_id = fa.actor_id
				WHERE fa.film_id = f.film_id
			) AS actors
		FROM film f`
	if predicate != "" {
		query += `
		WHERE ` + predicate
	}
	query += `
		ORDER BY f.title ASC
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
	observeQuery(constants.OpSearchFilms, query, args, startTime, err)
	if err != nil {
		return nil, fmt.Errorf("failed to search films by %s: %w", filter.Mode, err)
	}
	defer rows.Close()

	results := []models.FilmSearchResult{}
	for rows.Next() {
		var result models.FilmSearchResult
		if err := scanFilm(rows, &result.Film, &result.Actors); err != nil {
			return nil, fmt.Errorf("failed to scan film search row: %w", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating film search rows: %w", err)
	}

	return results, nil
}

// scanFilm reads the shared film projection followed by any extra columns
func scanFilm(row rowScanner, film *models.Film, extra ...interface{}) error {
	dest := []interface{}{
		&film.ID,
		&film.Title,
		&film.Description,
		&film.ReleaseYear,
		&film.Length,
		&film.Rating,
		&film.Category,
		&film.RentalCount,
	}
	return row.Scan(append(dest, extra...)...)
}
