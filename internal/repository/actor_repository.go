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

// ActorRepository defines methods for reading actors
type ActorRepository interface {
	Top(ctx context.Context, limit int) ([]models.Actor, error)
	GetByID(ctx context.Context, id int64) (*models.Actor, error)
	TopFilms(ctx context.Context, actorID int64, limit int) ([]models.ActorFilm, error)
}

// MySQLActorRepository is a MySQL implementation of ActorRepository
type MySQLActorRepository struct {
	db database.Querier
}

// NewActorRepository creates a new ActorRepository
func NewActorRepository(db database.Querier) ActorRepository {
	return &MySQLActorRepository{
		db: db,
	}
}

// Top retrieves the actors appearing in the most distinct stocked films.
// Ties are ordered by last name, then first name.
func (r *MySQLActorRepository) Top(ctx context.Context, limit int) ([]models.Actor, error) {
	startTime := time.Now()

	query := `
		SELECT a.actor_id, a.first_name, a.last_name, COUNT(DISTINCT i.film_id) AS film_count
		FROM actor a
		JOIN film_actor fa ON fa.actor_id = a.actor_id
		JOIN inventory i ON i.film_id = fa.film_id
		GROUP BY a.actor_id, a.first_name, a.last_name
		ORDER BY film_count DESC, a.last_name ASC, a.first_name ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	observeQuery(constants.OpTopActors, query, []interface{}{limit}, startTime, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query top actors: %w", err)
	}
	defer rows.Close()

	actors := []models.Actor{}
	for rows.Next() {
		var actor models.Actor
		if err := rows.Scan(&actor.ID, &actor.FirstName, &actor.LastName, &actor.FilmCount); err != nil {
			return nil, fmt.Errorf("failed to scan actor row: %w", err)
		}
		actors = append(actors, actor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating actor rows: %w", err)
	}

	return actors, nil
}

// GetByID retrieves an actor by ID with the number of distinct films it appears in
func (r *MySQLActorRepository) GetByID(ctx context.Context, id int64) (*models.Actor, error) {
	startTime := time.Now()

	query := `
		SELECT a.actor_id, a.first_name, a.last_name, COUNT(DISTINCT fa.film_id) AS film_count
		FROM actor a
		LEFT JOIN film_actor fa ON fa.actor_id = a.actor_id
		WHERE a.actor_id = ?
		GROUP BY a.actor_id, a.first_name, a.last_name
	`

	actor := &models.Actor{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&actor.ID,
		&actor.FirstName,
		&actor.LastName,
		&actor.FilmCount,
	)
	observeQuery(constants.OpActorByID, query, []interface{}{id}, startTime, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("Actor", id)
		}
		return nil, fmt.Errorf("failed to get actor by ID: %w", err)
	}

	return actor, nil
}

// TopFilms retrieves an actor's most rented films
func (r *MySQLActorRepository) TopFilms(ctx context.Context, actorID int64, limit int) ([]models.ActorFilm, error) {
	startTime := time.Now()

	query := `
		SELECT f.film_id, f.title, COUNT(r.rental_id) AS rental_count
		FROM film f
		JOIN film_actor fa ON fa.film_id = f.film_id
		JOIN inventory i ON i.film_id = f.film_id
		JOIN rental r ON r.inventory_id = i.inventory_id
		WHERE fa.actor_id = ?
		GROUP BY f.film_id, f.title
		ORDER BY rental_count DESC, f.title ASC
		LIMIT ?
	`

	args := []interface{}{actorID, limit}
	rows, err := r.db.QueryContext(ctx, query, args...)
	observeQuery(constants.OpActorTopFilms, query, args, startTime, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query top films for actor %d: %w", actorID, err)
	}
	defer rows.Close()

	films := []models.ActorFilm{}
	for rows.Next() {
		var film models.ActorFilm
		if err := rows.Scan(&film.ID, &film.Title, &film.RentalCount); err != nil {
			return nil, fmt.Errorf("failed to scan actor film row: %w", err)
		}
		films = append(films, film)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating actor film rows: %w", err)
	}

	return films, nil
}
