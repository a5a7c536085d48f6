// Package constants provides shared constant values used throughout the application.
//
// The errorcodes.go file defines user-facing messages and logging constants.
// Messages are safe to show to clients and never carry driver details.
package constants

// User-Facing Error Messages define standardized messages that can be safely presented to users.
const (
	// MsgInternalServerError provides a generic server error message.
	MsgInternalServerError = "An internal server error occurred"

	// MsgServiceUnhealthy is returned by the health endpoint when the database is unreachable.
	MsgServiceUnhealthy = "Service is not healthy"

	// MsgRequestBodyTooLarge indicates that the request payload exceeds size limits.
	MsgRequestBodyTooLarge = "Request body too large"

	// MsgEmptyRequestBody indicates that a request body was expected but not provided.
	MsgEmptyRequestBody = "Request body must not be empty"

	// MsgMalformedJSON indicates that the request body contains invalid JSON.
	MsgMalformedJSON = "Request body contains malformed JSON"

	// MsgFilmAndCustomerRequired is returned when the rent payload lacks an identifier.
	MsgFilmAndCustomerRequired = "film_id and customer_id are required"

	// MsgCustomerNotFound is returned when the rent payload names an unknown customer.
	MsgCustomerNotFound = "customer not found"

	// MsgNoCopiesAvailable is returned when every copy of the film is rented out.
	MsgNoCopiesAvailable = "no copies available"

	// MsgConcurrentRental is returned when a concurrent rental won the race for the same rows.
	MsgConcurrentRental = "rental conflicted with a concurrent request, try again"

	// MsgRouteNotFound is returned for unknown routes and out-of-range path identifiers.
	MsgRouteNotFound = "The requested URL was not found on the server"

	// MsgMethodNotAllowed is returned when a route exists for another method.
	MsgMethodNotAllowed = "The method is not allowed for the requested URL"

	// MsgPanicRecovered is returned when a handler panics.
	MsgPanicRecovered = "An unexpected error occurred while processing your request"
)

// Logger Constants define values used for structured logging.
const (
	// LogCategoryRental is the log category for rental events.
	LogCategoryRental = "rental"

	// LogRedactedValue is used to replace sensitive values in logs.
	LogRedactedValue = "[REDACTED]"
)

// Rental outcomes used as metric labels.
const (
	RentalOutcomeCreated  = "created"
	RentalOutcomeNotFound = "not_found"
	RentalOutcomeNoCopies = "no_copies"
	RentalOutcomeConflict = "conflict"
	RentalOutcomeInvalid  = "invalid"
	RentalOutcomeError    = "error"
)
