package utils

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/config"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/constants"
)

// InitLogger initializes the application logger with the given configuration
func InitLogger(cfg *config.AppConfig) {
	// Set global log level
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Logging.Level))
	if err != nil || cfg.Logging.Level == "" {
		// Default to info level if invalid
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = newLogger(cfg, os.Stdout)

	log.Info().Str("level", level.String()).Msg("Logger initialized")
}

// newLogger builds the application logger writing to out
func newLogger(cfg *config.AppConfig, out io.Writer) zerolog.Logger {
	// Configure logger output format
	output := out
	if strings.ToLower(cfg.Logging.Format) == "console" && !cfg.App.IsProduction() {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    false, // Enable colors for development
		}
	}

	logCtx := zerolog.New(output).
		With().
		Timestamp().
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Str("env", cfg.App.Environment)

	// Development logs point at the calling line
	if cfg.App.IsDevelopment() {
		logCtx = logCtx.Caller()
	}

	return logCtx.Logger()
}

// RequestLogger creates a logger with request-specific context
func RequestLogger(requestID, method, path string) zerolog.Logger {
	return log.With().
		Str(constants.RequestIDContextKey, requestID).
		Str("method", method).
		Str("path", path).
		Logger()
}

// LogHTTPRequest logs an HTTP request with request details
func LogHTTPRequest(requestID, method, path, remoteAddr, userAgent string, statusCode int, latency time.Duration) {
	// Only log some paths at debug level to reduce noise
	if path == constants.HealthPath || path == constants.MetricsPath {
		if zerolog.GlobalLevel() > zerolog.DebugLevel {
			return
		}
	}

	event := log.Debug()

	// Elevate error responses to warning/error level
	switch {
	case statusCode >= 500:
		event = log.Error()
	case statusCode >= 400:
		event = log.Warn()
	case strings.HasPrefix(path, constants.APIBasePath):
		// Log API requests at info level
		event = log.Info()
	}

	event.
		Str(constants.RequestIDContextKey, requestID).
		Str("method", method).
		Str("path", path).
		Str("remote_addr", remoteAddr).
		Str("user_agent", userAgent).
		Int("status", statusCode).
		Dur("latency", latency).
		Msg("HTTP Request")
}

// LogError logs an error with context information
func LogError(err error, context map[string]interface{}) {
	event := log.Error().Err(err)

	// Add context information
	for key, value := range context {
		switch v := value.(type) {
		case string:
			event = event.Str(key, v)
		case int:
			event = event.Int(key, v)
		case int64:
			event = event.Int64(key, v)
		case float64:
			event = event.Float64(key, v)
		case bool:
			event = event.Bool(key, v)
		default:
			event = event.Interface(key, v)
		}
	}

	event.Msg("Error occurred")
}

// LogPanic logs a recovered panic value
func LogPanic(recovered interface{}, stack []byte) {
	log.Error().
		Interface("panic", recovered).
		Str("stack", string(stack)).
		Msg("Panic recovered")
}

// LogDBQuery logs a database query for debugging
func LogDBQuery(operation, query string, args []interface{}, duration time.Duration, err error) {
	event := log.Debug()
	if err != nil {
		event = log.Error().Err(err)
	}

	event.
		Str("operation", operation).
		Str("query", compactSQL(query)).
		Interface("args", args).
		Dur("duration", duration).
		Msg("Database query executed")
}

// LogRental logs the outcome of a rent attempt
func LogRental(outcome string, filmID, customerID, rentalID int64, err error) {
	event := log.Info()
	switch {
	case err != nil && outcome == constants.RentalOutcomeError:
		event = log.Error().Err(err)
	case err != nil:
		event = log.Warn().Str("reason", err.Error())
	}

	event.
		Str("category", constants.LogCategoryRental).
		Str("outcome", outcome).
		Int64("film_id", filmID).
		Int64("customer_id", customerID)

	if rentalID > 0 {
		event = event.Int64("rental_id", rentalID)
	}

	event.Msg("Rental processed")
}

// compactSQL collapses the whitespace of a multi-line statement for log output
func compactSQL(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
