package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"room-booking/pkg/apperr"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// ErrorEnvelope is the uniform error body the frontend expects.
type ErrorEnvelope struct {
	StatusCode int       `json:"statusCode"`
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Path       string    `json:"path"`
	Timestamp  time.Time `json:"timestamp"`
}

// ResponseJSON writes JSON response with custom status code
func ResponseJSON(w http.ResponseWriter, code int, status bool, message string, data, errs any) {
	response := Response{
		Status:  status,
		Message: message,
		Data:    data,
		Errors:  errs,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusOK, true, message, data, nil)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusCreated, true, message, data, nil)
}

// ------------- Error responses -------------

// ResponseError maps an application error onto the error envelope. Anything
// that is not an *apperr.Error becomes an opaque 500.
func ResponseError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.Internal(err)
	}

	envelope := ErrorEnvelope{
		StatusCode: appErr.Status,
		Code:       appErr.Code,
		Message:    appErr.Message,
		Path:       r.URL.Path,
		Timestamp:  time.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	// Surfaced so the access log can record which code was returned.
	w.Header().Set("X-Error-Code", appErr.Code)
	w.WriteHeader(appErr.Status)
	json.NewEncoder(w).Encode(envelope)
}

// ResponseValidationFailed returns 400 with field-level details.
func ResponseValidationFailed(w http.ResponseWriter, r *http.Request, fieldErrors map[string]string) {
	envelope := struct {
		ErrorEnvelope
		Errors map[string]string `json:"errors,omitempty"`
	}{
		ErrorEnvelope: ErrorEnvelope{
			StatusCode: http.StatusBadRequest,
			Code:       apperr.CodeValidationFailed,
			Message:    FormatValidationErrors(fieldErrors),
			Path:       r.URL.Path,
			Timestamp:  time.Now().UTC(),
		},
		Errors: fieldErrors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Error-Code", apperr.CodeValidationFailed)
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(envelope)
}
