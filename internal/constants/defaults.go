// Package constants provides shared constant values used throughout the application.
//
// The defaults.go file defines default values and limits used throughout the application.
// These constants provide fallback configuration values and the fixed business values
// of the rental flow.
package constants

// Default Configuration Values define fallback settings when not specified in configuration.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 5000

	// DefaultDBHost is the default database host.
	DefaultDBHost = "localhost"

	// DefaultDBPort is the default MySQL port.
	DefaultDBPort = 3306

	// DefaultDBName is the default schema name.
	DefaultDBName = "sakila"

	// DefaultDBMaxConnections is the capacity of the connection pool.
	DefaultDBMaxConnections = 10

	// DefaultDBMinConnections is the number of idle connections kept in the pool.
	DefaultDBMinConnections = 2

	// DefaultLogLevel is the default logging verbosity level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default logging output format.
	DefaultLogFormat = "json"

	// DefaultAppName is reported in logs and on the version endpoint.
	DefaultAppName = "sakila-api"
)

// Environment Types define the recognized application running environments.
const (
	// EnvDevelopment identifies a development environment with debugging features enabled.
	EnvDevelopment = "development"

	// EnvTesting identifies a testing environment for automated tests.
	EnvTesting = "testing"

	// EnvProduction identifies a production environment with optimized settings.
	EnvProduction = "production"
)

// Request limits.
const (
	// MaxRequestBodySize is the maximum size in bytes for HTTP request bodies.
	MaxRequestBodySize = 1048576 // 1MB in bytes
)

// Catalog and rental values.
const (
	// TopListLimit caps the top-rented and top-actor listings and the actor detail film list.
	TopListLimit = 5

	// DefaultRentalStaffID is the staff member recorded on every rental created by the API.
	DefaultRentalStaffID = 1

	// ActorNameSeparator joins actor names in search results.
	ActorNameSeparator = ", "
)
