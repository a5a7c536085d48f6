// internal/utils/validation.go
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/constants"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// validatorOnce guards the construction of validate
	validatorOnce sync.Once
)

// InitValidator initializes the validator. Calls after the first are no-ops.
func InitValidator() {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Register function to get json tag names instead of struct field names
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		validate = v
		log.Info().Msg("Validator initialized")
	})
}

// GetValidator returns the singleton validator instance, building it on first use
func GetValidator() *validator.Validate {
	InitValidator()
	return validate
}

// DecodeJSON decodes a JSON request body into the provided struct.
// Unknown fields are ignored; the body size is capped.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return NewBadRequestError(constants.MsgEmptyRequestBody)
	}

	// Limit the size of the request body to prevent DOS attacks
	r.Body = http.MaxBytesReader(nil, r.Body, constants.MaxRequestBodySize)

	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(v); err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &maxBytesError):
			return NewBadRequestError(constants.MsgRequestBodyTooLarge)

		case errors.Is(err, io.EOF):
			return NewBadRequestError(constants.MsgEmptyRequestBody)

		case errors.Is(err, io.ErrUnexpectedEOF):
			return NewBadRequestError(constants.MsgMalformedJSON)

		case errors.As(err, &syntaxError):
			return NewBadRequestError(fmt.Sprintf("%s (at position %d)", constants.MsgMalformedJSON, syntaxError.Offset))

		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return NewValidationError(unmarshalTypeError.Field, fmt.Sprintf("Must be a %s", unmarshalTypeError.Type.String()))
			}
			return NewBadRequestError(fmt.Sprintf("Request body contains incorrect JSON type (at position %d)", unmarshalTypeError.Offset))

		case errors.As(err, &invalidUnmarshalError):
			return NewInternalServerError(err)

		default:
			return NewBadRequestError(fmt.Sprintf("Error decoding JSON: %s", err.Error()))
		}
	}

	// Check for additional JSON data that would be ignored
	if dec.More() {
		return NewBadRequestError("Request body must only contain a single JSON object")
	}

	return nil
}

// ValidateStruct validates a struct using the validator
func ValidateStruct(v interface{}) error {
	err := GetValidator().Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		// If only one field has an error, return a specific field error
		if len(validationErrors) == 1 {
			e := validationErrors[0]
			return NewValidationError(e.Field(), getErrorMessage(e))
		}

		details := make(map[string]string, len(validationErrors))
		for _, e := range validationErrors {
			details[e.Field()] = getErrorMessage(e)
		}

		return NewValidationErrorWithDetails("Multiple validation errors", details)
	}

	return NewBadRequestError(err.Error())
}

// DecodeAndValidate decodes a JSON request body and validates it
func DecodeAndValidate(r *http.Request, v interface{}) error {
	if err := DecodeJSON(r, v); err != nil {
		return err
	}
	return ValidateStruct(v)
}

// getErrorMessage returns a user-friendly error message for a validation error
func getErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "gt":
		return fmt.Sprintf("Must be greater than %s", e.Param())
	case "gte", "min":
		return fmt.Sprintf("Must be at least %s", e.Param())
	case "lte", "max":
		return fmt.Sprintf("Must be at most %s", e.Param())
	case "oneof":
		allowedValues := strings.ReplaceAll(e.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", allowedValues)
	default:
		return fmt.Sprintf("Failed validation on the '%s' tag", e.Tag())
	}
}
