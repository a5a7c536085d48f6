package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/config"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/constants"
)

// captureStdout captures stdout during function execution
func captureStdout(fn func()) string {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

// captureOutput captures log output for testing
func captureOutput(fn func()) string {
	original := log.Logger
	originalLevel := zerolog.GlobalLevel()

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	fn()

	log.Logger = original
	zerolog.SetGlobalLevel(originalLevel)

	return buf.String()
}

// decodeLine parses the single JSON log line in out
func decodeLine(t *testing.T, out string) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &entry), out)
	return entry
}

func createTestConfig() *config.AppConfig {
	return &config.AppConfig{
		App: config.AppSettings{
			Name:        "sakila-api",
			Version:     "1.0.0",
			Environment: "testing",
		},
		Logging: config.LoggingSettings{
			Level:  "debug",
			Format: "json",
		},
	}
}

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
	}()

	out := captureStdout(func() {
		InitLogger(createTestConfig())
	})

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.Contains(t, out, "Logger initialized")
	assert.Contains(t, out, `"app":"sakila-api"`)

	t.Run("Invalid level falls back to info", func(t *testing.T) {
		cfg := createTestConfig()
		cfg.Logging.Level = "loud"

		captureStdout(func() {
			InitLogger(cfg)
		})

		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})
}

func TestNewLoggerConsoleFormat(t *testing.T) {
	cfg := createTestConfig()
	cfg.Logging.Format = "console"

	var buf bytes.Buffer
	logger := newLogger(cfg, &buf)
	logger.Info().Msg("console line")

	assert.Contains(t, buf.String(), "console line")
	assert.False(t, strings.HasPrefix(buf.String(), "{"))

	t.Run("Production forces JSON", func(t *testing.T) {
		cfg.App.Environment = constants.EnvProduction
		buf.Reset()

		logger := newLogger(cfg, &buf)
		logger.Info().Msg("json line")

		assert.True(t, strings.HasPrefix(buf.String(), "{"))
	})
}

func TestNewLoggerDevelopmentCaller(t *testing.T) {
	cfg := createTestConfig()

	var buf bytes.Buffer
	logger := newLogger(cfg, &buf)
	logger.Info().Msg("no caller")
	assert.NotContains(t, decodeLine(t, buf.String()), zerolog.CallerFieldName)

	cfg.App.Environment = constants.EnvDevelopment
	buf.Reset()
	logger = newLogger(cfg, &buf)
	logger.Info().Msg("with caller")

	entry := decodeLine(t, buf.String())
	require.Contains(t, entry, zerolog.CallerFieldName)
	assert.Contains(t, entry[zerolog.CallerFieldName], "logger_test.go")
}

func TestRequestLogger(t *testing.T) {
	out := captureOutput(func() {
		logger := RequestLogger("req-1", "GET", "/api/films/top-rented")
		logger.Info().Msg("handled")
	})

	entry := decodeLine(t, out)
	assert.Equal(t, "req-1", entry[constants.RequestIDContextKey])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/films/top-rented", entry["path"])
}

func TestLogHTTPRequest(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
	}{
		{"API success", "/api/actors/top", 200, "info"},
		{"Client error", "/api/films/rent", 409, "warn"},
		{"Server error", "/api/films/rent", 500, "error"},
		{"Health at debug", "/health", 200, "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureOutput(func() {
				LogHTTPRequest("req-2", "GET", tt.path, "127.0.0.1:5000", "curl/8.0", tt.status, 12*time.Millisecond)
			})

			entry := decodeLine(t, out)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, float64(tt.status), entry["status"])
		})
	}

	t.Run("Health skipped above debug", func(t *testing.T) {
		original := log.Logger
		originalLevel := zerolog.GlobalLevel()
		defer func() {
			log.Logger = original
			zerolog.SetGlobalLevel(originalLevel)
		}()

		var buf bytes.Buffer
		log.Logger = zerolog.New(&buf)
		zerolog.SetGlobalLevel(zerolog.InfoLevel)

		LogHTTPRequest("req-3", "GET", constants.HealthPath, "", "", 200, time.Millisecond)

		assert.Empty(t, buf.String())
	})
}

func TestLogError(t *testing.T) {
	out := captureOutput(func() {
		LogError(errors.New("boom"), map[string]interface{}{
			"film_id":  int64(3),
			"attempts": 1,
			"ratio":    0.5,
			"locked":   true,
			"op":       "claim_inventory",
			"extra":    []int{1},
		})
	})

	entry := decodeLine(t, out)
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "claim_inventory", entry["op"])
	assert.Equal(t, true, entry["locked"])
}

func TestErrorFromAppErrorLogsServerFailures(t *testing.T) {
	out := captureOutput(func() {
		ErrorFromAppError(httptest.NewRecorder(), NewInternalServerError(errors.New("dial tcp: connection refused")))
	})

	entry := decodeLine(t, out)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, constants.MsgInternalServerError, entry["error"])
	assert.Equal(t, "dial tcp: connection refused", entry["dev_info"])
	assert.Equal(t, float64(http.StatusInternalServerError), entry["status"])

	t.Run("Client errors are not logged", func(t *testing.T) {
		out := captureOutput(func() {
			ErrorFromAppError(httptest.NewRecorder(), NewBadRequestError("bad"))
		})
		assert.Empty(t, out)
	})
}

func TestLogPanic(t *testing.T) {
	out := captureOutput(func() {
		LogPanic("nil map", []byte("goroutine 1 [running]"))
	})

	entry := decodeLine(t, out)
	assert.Equal(t, "nil map", entry["panic"])
	assert.Equal(t, "Panic recovered", entry["message"])
}

func TestLogDBQuery(t *testing.T) {
	t.Run("Success at debug", func(t *testing.T) {
		out := captureOutput(func() {
			LogDBQuery(constants.OpFilmByID, "SELECT f.film_id\n\t\tFROM film f\n\t\tWHERE f.film_id = ?", []interface{}{int64(1)}, time.Millisecond, nil)
		})

		entry := decodeLine(t, out)
		assert.Equal(t, "debug", entry["level"])
		assert.Equal(t, "SELECT f.film_id FROM film f WHERE f.film_id = ?", entry["query"])
		assert.Equal(t, constants.OpFilmByID, entry["operation"])
	})

	t.Run("Failure at error", func(t *testing.T) {
		out := captureOutput(func() {
			LogDBQuery(constants.OpInsertRental, "INSERT INTO rental", nil, time.Millisecond, errors.New("deadlock"))
		})

		entry := decodeLine(t, out)
		assert.Equal(t, "error", entry["level"])
		assert.Equal(t, "deadlock", entry["error"])
	})
}

func TestLogRental(t *testing.T) {
	tests := []struct {
		name      string
		outcome   string
		rentalID  int64
		err       error
		wantLevel string
	}{
		{"Created", constants.RentalOutcomeCreated, 16050, nil, "info"},
		{"No copies", constants.RentalOutcomeNoCopies, 0, errors.New("no copies available"), "warn"},
		{"Error", constants.RentalOutcomeError, 0, errors.New("connection reset"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureOutput(func() {
				LogRental(tt.outcome, 1, 2, tt.rentalID, tt.err)
			})

			entry := decodeLine(t, out)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.outcome, entry["outcome"])
			assert.Equal(t, constants.LogCategoryRental, entry["category"])
			if tt.rentalID > 0 {
				assert.Equal(t, float64(tt.rentalID), entry["rental_id"])
			} else {
				assert.NotContains(t, entry, "rental_id")
			}
		})
	}
}
