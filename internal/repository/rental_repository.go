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

// RentalRepository defines the statements of the rent flow. Every statement
// takes the Querier of the surrounding transaction.
type RentalRepository interface {
	// WithinTransaction runs fn inside a serializable transaction
	WithinTransaction(ctx context.Context, fn func(q database.Querier) error) error

	CustomerExists(ctx context.Context, q database.Querier, customerID int64) (bool, error)
	ClaimAvailableInventory(ctx context.Context, q database.Querier, filmID int64) (int64, error)
	NextRentalID(ctx context.Context, q database.Querier) (int64, error)
	Create(ctx context.Context, q database.Querier, rental *models.Rental) error
}

// MySQLRentalRepository is a MySQL implementation of RentalRepository
type MySQLRentalRepository struct {
	db *database.Pool
}

// NewRentalRepository creates a new RentalRepository
func NewRentalRepository(db *database.Pool) RentalRepository {
	return &MySQLRentalRepository{
		db: db,
	}
}

// WithinTransaction runs fn inside a serializable transaction. fn's error
// is returned unchanged after rollback.
func (r *MySQLRentalRepository) WithinTransaction(ctx context.Context, fn func(q database.Querier) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}
	return r.db.TransactionWithOptions(ctx, opts, func(tx *sql.Tx) error {
		return fn(tx)
	})
}

// CustomerExists checks whether a customer row exists
func (r *MySQLRentalRepository) CustomerExists(ctx context.Context, q database.Querier, customerID int64) (bool, error) {
	startTime := time.Now()

	query := `
		SELECT 1
		FROM customer
		WHERE customer_id = ?
	`

	var one int
	err := q.QueryRowContext(ctx, query, customerID).Scan(&one)
	observeQuery(constants.OpCustomerExists, query, []interface{}{customerID}, startTime, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check customer existence: %w", err)
	}

	return true, nil
}

// ClaimAvailableInventory locks the lowest-numbered copy of a film that has
// no open rental and returns its inventory ID. The lock is held until the
// surrounding transaction ends so a concurrent renter cannot take the same copy.
// A conflict error is returned when every copy is out.
func (r *MySQLRentalRepository) ClaimAvailableInventory(ctx context.Context, q database.Querier, filmID int64) (int64, error) {
	startTime := time.Now()

	query := `
		SELECT i.inventory_id
		FROM inventory i
		LEFT JOIN rental r ON r.inventory_id = i.inventory_id AND r.return_date IS NULL
		WHERE i.film_id = ? AND r.rental_id IS NULL
		ORDER BY i.inventory_id ASC
		LIMIT 1
		FOR UPDATE
	`

	var inventoryID int64
	err := q.QueryRowContext(ctx, query, filmID).Scan(&inventoryID)
	observeQuery(constants.OpClaimInventory, query, []interface{}{filmID}, startTime, err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, utils.NewConflictError(constants.MsgNoCopiesAvailable)
		}
		return 0, fmt.Errorf("failed to claim inventory for film %d: %w", filmID, err)
	}

	return inventoryID, nil
}

// NextRentalID returns the current maximum rental ID plus one. The read locks
// the index so concurrent renters serialize on it instead of reusing the value.
func (r *MySQLRentalRepository) NextRentalID(ctx context.Context, q database.Querier) (int64, error) {
	startTime := time.Now()

	query := `
		SELECT COALESCE(MAX(rental_id), 0) + 1
		FROM rental
		FOR UPDATE
	`

	var nextID int64
	err := q.QueryRowContext(ctx, query).Scan(&nextID)
	observeQuery(constants.OpNextRentalID, query, nil, startTime, err)

	if err != nil {
		return 0, fmt.Errorf("failed to compute next rental ID: %w", err)
	}

	return nextID, nil
}

// Create inserts an open rental
func (r *MySQLRentalRepository) Create(ctx context.Context, q database.Querier, rental *models.Rental) error {
	startTime := time.Now()

	query := `
		INSERT INTO rental (rental_id, rental_date, inventory_id, customer_id, staff_id, return_date)
		VALUES (?, ?, ?, ?, ?, NULL)
	`

	args := []interface{}{rental.ID, rental.RentalDate, rental.InventoryID, rental.CustomerID, rental.StaffID}
	_, err := q.ExecContext(ctx, query, args...)
	observeQuery(constants.OpInsertRental, query, args, startTime, err)

	if err != nil {
		return fmt.Errorf("failed to insert rental: %w", err)
	}

	return nil
}
