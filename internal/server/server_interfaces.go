// Package server provides the HTTP server of the Sakila API.
// This file defines the interfaces the server depends on, so routes can be
// exercised in tests without a database.
package server

import (
	"context"
	"database/sql"
)

// DBHealthChecker defines the database operations the server needs.
type DBHealthChecker interface {
	// HealthCheck verifies the database connection is working properly
	//
	// Parameters:
	//   - ctx: Context for the health check operation
	//
	// Returns:
	//   - An error if the database is unreachable or unhealthy
	HealthCheck(ctx context.Context) error

	// Stats reports connection pool usage
	Stats() sql.DBStats

	// Close terminates the database connection
	Close()
}
