// Package utils provides utility functions and helpers for common operations
// used throughout the application: MySQL error checks, SQL pattern building
// and small slice helpers.
package utils

import (
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/constants"
)

// IsDuplicateKeyError checks if an error is a MySQL duplicate key error.
// This is useful for handling unique constraint violations.
//
// Parameters:
//   - err: the error to check
//
// Returns:
//   - true if the error is a MySQL duplicate key error (code 1062), false otherwise
func IsDuplicateKeyError(err error) bool {
	return hasMySQLCode(err, constants.MySQLErrDuplicateEntry)
}

// IsLockConflictError checks if an error was raised because InnoDB chose this
// transaction as a deadlock victim or gave up waiting for a row lock.
//
// Parameters:
//   - err: the error to check
//
// Returns:
//   - true for MySQL errors 1213 and 1205, false otherwise
func IsLockConflictError(err error) bool {
	return hasMySQLCode(err, constants.MySQLErrDeadlock, constants.MySQLErrLockWaitTimeout)
}

// hasMySQLCode reports whether err wraps a MySQL error with one of codes
func hasMySQLCode(err error, codes ...uint16) bool {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return false
	}
	for _, code := range codes {
		if mysqlErr.Number == code {
			return true
		}
	}
	return false
}

// ContainsPattern wraps s in LIKE wildcards for a substring match.
// LIKE metacharacters inside s are passed through unchanged.
//
// Parameters:
//   - s: the text to search for
//
// Returns:
//   - the pattern "%s%"
func ContainsPattern(s string) string {
	return "%" + s + "%"
}

// ContainsString checks if a slice of strings contains a specific string.
//
// Parameters:
//   - slice: the slice of strings to search
//   - str: the string to look for
//
// Returns:
//   - true if the string is found in the slice, false otherwise
func ContainsString(slice []string, str string) bool {
	for _, item := range slice {
		if item == str {
			return true
		}
	}
	return false
}
