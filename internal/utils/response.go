// Package utils provides utility functions and helpers for the application.
// This file implements the response helpers shared by every endpoint.
//
// Successful responses are written as the bare payload (an object, a list or
// null). Failures always use ErrorResponse so clients can branch on "ok".
package utils

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/constants"
)

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	OK      bool           `json:"ok"`                // Always false
	Error   string         `json:"error"`             // A human-readable error message
	Code    string         `json:"code,omitempty"`    // A machine-readable error code
	Details map[string]any `json:"details,omitempty"` // Additional details about the error (e.g., validation errors)
}

// JSON sends data as the response body with the given status code.
// This is the primary function for sending successful responses.
//
// Parameters:
//   - w: The HTTP response writer
//   - statusCode: The HTTP status code
//   - data: The payload, written as-is
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	SendJSON(w, statusCode, data)
}

// Error sends an error response with the given status code and error information.
//
// Parameters:
//   - w: The HTTP response writer
//   - statusCode: The HTTP status code
//   - code: A machine-readable error code
//   - message: A human-readable error message
//   - details: Additional details about the error (e.g., validation errors)
func Error(w http.ResponseWriter, statusCode int, code, message string, details map[string]any) {
	response := ErrorResponse{
		OK:      constants.ResponseFailure,
		Error:   message,
		Code:    code,
		Details: details,
	}

	SendJSON(w, statusCode, response)
}

// ErrorFromAppError sends an error response based on an AppError.
// The code comes from the underlying sentinel error and the details from
// either the AppError details or its field.
func ErrorFromAppError(w http.ResponseWriter, err *AppError) {
	details := err.Details
	if details == nil && err.Field != "" {
		details = map[string]any{
			err.Field: err.Message,
		}
	}

	if err.StatusCode >= http.StatusInternalServerError && err.DevInfo != "" {
		LogError(err, map[string]interface{}{
			"status":   err.StatusCode,
			"dev_info": err.DevInfo,
		})
	}

	Error(w, err.StatusCode, err.Code(), err.Message, details)
}

// HandleError converts any error into an error response
func HandleError(w http.ResponseWriter, err error) {
	ErrorFromAppError(w, ParseError(err))
}

// SendJSON is a helper function to send JSON data with proper headers.
// This handles JSON marshaling and error handling for all response types.
func SendJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	// Marshal first so a failure can still change the status code
	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
		w.WriteHeader(http.StatusInternalServerError)
		if _, err := w.Write([]byte(`{"ok":false,"error":"Failed to generate response","code":"internal_error"}`)); err != nil {
			log.Error().Err(err).Msg("Failed to write error response")
		}
		return
	}

	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)

	// Write the JSON data to the response
	if _, err := w.Write(jsonData); err != nil {
		// Log write errors but don't try to recover
		log.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// BadRequest sends a 400 Bad Request response with the given message.
func BadRequest(w http.ResponseWriter, message string, details map[string]any) {
	Error(w, http.StatusBadRequest, constants.CodeBadRequest, message, details)
}

// NotFound sends a 404 Not Found response with the given message.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, constants.CodeNotFound, message, nil)
}

// ServiceUnavailable sends a 503 response with the given message.
func ServiceUnavailable(w http.ResponseWriter, message string) {
	Error(w, http.StatusServiceUnavailable, constants.CodeServiceUnavailable, message, nil)
}
