package utils_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-sql-driver/mysql"

	"github.com/yasinhessnawi1/Sakila_Backend/internal/constants"
	"github.com/yasinhessnawi1/Sakila_Backend/internal/utils"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		data       interface{}
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Object payload",
			statusCode: http.StatusOK,
			data:       map[string]int64{"film_id": 1},
			wantStatus: http.StatusOK,
			wantBody:   `{"film_id":1}`,
		},
		{
			name:       "Empty list payload",
			statusCode: http.StatusOK,
			data:       []string{},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "Nil payload",
			statusCode: http.StatusOK,
			data:       nil,
			wantStatus: http.StatusOK,
			wantBody:   `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			utils.JSON(rr, tt.statusCode, tt.data)

			if status := rr.Code; status != tt.wantStatus {
				t.Errorf("handler returned wrong status code: got %v want %v", status, tt.wantStatus)
			}

			if ctype := rr.Header().Get("Content-Type"); ctype != constants.ContentTypeJSON {
				t.Errorf("handler returned wrong content type: got %v want %v", ctype, constants.ContentTypeJSON)
			}

			if body := rr.Body.String(); body != tt.wantBody {
				t.Errorf("handler returned unexpected body: got %v want %v", body, tt.wantBody)
			}
		})
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		code       string
		message    string
		details    map[string]any
		wantBody   map[string]interface{}
	}{
		{
			name:       "Basic error",
			statusCode: http.StatusBadRequest,
			code:       constants.CodeBadRequest,
			message:    constants.MsgFilmAndCustomerRequired,
			wantBody: map[string]interface{}{
				"ok":    false,
				"error": "film_id and customer_id are required",
				"code":  "bad_request",
			},
		},
		{
			name:       "Error with details",
			statusCode: http.StatusBadRequest,
			code:       constants.CodeValidationError,
			message:    "Validation failed",
			details:    map[string]any{"film_id": "This field is required"},
			wantBody: map[string]interface{}{
				"ok":      false,
				"error":   "Validation failed",
				"code":    "validation_error",
				"details": map[string]interface{}{"film_id": "This field is required"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			utils.Error(rr, tt.statusCode, tt.code, tt.message, tt.details)

			if rr.Code != tt.statusCode {
				t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, tt.statusCode)
			}

			var response map[string]interface{}
			if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
				t.Fatalf("Could not parse response body: %v", err)
			}

			if !reflect.DeepEqual(response, tt.wantBody) {
				t.Errorf("handler returned unexpected body: got %v want %v", response, tt.wantBody)
			}
		})
	}
}

func TestErrorFromAppError(t *testing.T) {
	tests := []struct {
		name        string
		err         *utils.AppError
		wantStatus  int
		wantCode    string
		wantDetails bool
	}{
		{"Not found", utils.NewNotFoundError("", constants.MsgCustomerNotFound), http.StatusNotFound, constants.CodeNotFound, false},
		{"Conflict", utils.NewConflictError(constants.MsgNoCopiesAvailable), http.StatusConflict, constants.CodeConflict, false},
		{"Field validation", utils.NewValidationError("customer_id", "This field is required"), http.StatusBadRequest, constants.CodeValidationError, true},
		{"Internal", utils.NewInternalServerError(errors.New("db down")), http.StatusInternalServerError, constants.CodeInternalError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			utils.ErrorFromAppError(rr, tt.err)

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %v, want %v", rr.Code, tt.wantStatus)
			}

			var response utils.ErrorResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
				t.Fatalf("Could not parse response body: %v", err)
			}
			if response.OK {
				t.Error("ok should be false")
			}
			if response.Code != tt.wantCode {
				t.Errorf("code = %v, want %v", response.Code, tt.wantCode)
			}
			if response.Error != tt.err.Message {
				t.Errorf("error = %v, want %v", response.Error, tt.err.Message)
			}
			if (response.Details != nil) != tt.wantDetails {
				t.Errorf("details = %v, wantDetails %v", response.Details, tt.wantDetails)
			}
		})
	}
}

func TestHandleError(t *testing.T) {
	rr := httptest.NewRecorder()

	utils.HandleError(rr, &mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"})

	if rr.Code != http.StatusConflict {
		t.Errorf("status = %v, want %v", rr.Code, http.StatusConflict)
	}

	var response utils.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse response body: %v", err)
	}
	if response.Error != constants.MsgConcurrentRental {
		t.Errorf("error = %v, want %v", response.Error, constants.MsgConcurrentRental)
	}
}

func TestConvenienceResponses(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
		wantCode   string
	}{
		{"BadRequest", func(w http.ResponseWriter) { utils.BadRequest(w, "bad", nil) }, http.StatusBadRequest, constants.CodeBadRequest},
		{"NotFound", func(w http.ResponseWriter) { utils.NotFound(w, "missing") }, http.StatusNotFound, constants.CodeNotFound},
		{"ServiceUnavailable", func(w http.ResponseWriter) { utils.ServiceUnavailable(w, constants.MsgServiceUnhealthy) }, http.StatusServiceUnavailable, constants.CodeServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			tt.write(rr)

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %v, want %v", rr.Code, tt.wantStatus)
			}

			var response utils.ErrorResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
				t.Fatalf("Could not parse response body: %v", err)
			}
			if response.Code != tt.wantCode {
				t.Errorf("code = %v, want %v", response.Code, tt.wantCode)
			}
		})
	}
}

func TestSendJSONMarshalFailure(t *testing.T) {
	rr := httptest.NewRecorder()

	utils.SendJSON(rr, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status = %v, want %v", rr.Code, http.StatusInternalServerError)
	}
}
