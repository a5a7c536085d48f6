// Package constants provides shared constant values used throughout the application.
//
// The database_const.go file holds the MySQL error numbers the application reacts
// to and the labels of its queries. The schema itself is owned by the database.
package constants

// MySQL server error numbers.
const (
	// MySQLErrDuplicateEntry is raised when a unique or primary key is violated.
	MySQLErrDuplicateEntry uint16 = 1062

	// MySQLErrLockWaitTimeout is raised when a row lock could not be acquired in time.
	MySQLErrLockWaitTimeout uint16 = 1205

	// MySQLErrDeadlock is raised when InnoDB picks the transaction as a deadlock victim.
	MySQLErrDeadlock uint16 = 1213

	// MySQLErrNoReferencedRow is raised when a foreign key target does not exist.
	MySQLErrNoReferencedRow uint16 = 1452
)

// Query operation labels used in logs and metrics.
const (
	OpTopRentedFilms = "top_rented_films"
	OpTopActors      = "top_actors"
	OpFilmByID       = "film_by_id"
	OpActorByID      = "actor_by_id"
	OpActorTopFilms  = "actor_top_films"
	OpSearchFilms    = "search_films"
	OpCustomerExists = "customer_exists"
	OpClaimInventory = "claim_inventory"
	OpNextRentalID   = "next_rental_id"
	OpInsertRental   = "insert_rental"
)
