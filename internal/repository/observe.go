package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/metrics"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/utils"
)

// observeQuery logs a finished statement and counts it. sql.ErrNoRows is an
// expected outcome for lookups and is recorded as a success.
func observeQuery(operation, query string, args []interface{}, startTime time.Time, err error) {
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
	}

	utils.LogDBQuery(operation, query, args, time.Since(startTime), err)
	metrics.ObserveDBQuery(operation, err)
}

// rowScanner is implemented by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}
