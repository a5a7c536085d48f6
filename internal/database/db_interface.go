// Package database provides the MySQL connection pool and transaction helpers for the API.
package database

import (
	"context"
	"database/sql"
)

// Querier is the subset of database/sql shared by the pool and a transaction.
// Repositories take a Querier so the same statement runs either directly on the
// pool or inside a transaction.
type Querier interface {
	// ExecContext executes a query with the provided context without returning any rows.
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

	// QueryContext executes a query with the provided context that returns rows.
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)

	// QueryRowContext executes a query with the provided context that is expected to return at most one row.
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Compile-time checks that both the pool and transactions satisfy Querier.
var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
	_ Querier = (*Pool)(nil)
)
