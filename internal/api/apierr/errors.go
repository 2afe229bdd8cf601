package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/wordhunt/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidBoard        = "INVALID_BOARD"
	CodeRoundNotFound       = "ROUND_NOT_FOUND"
	CodeRoundEnded          = "ROUND_ENDED"
	CodeRoundExpired        = "ROUND_EXPIRED"
	CodeDictionaryNotLoaded = "DICTIONARY_NOT_LOADED"
	CodeGenerationFailed    = "GENERATION_FAILED"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrRoundNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRoundNotFound, "Round not found"}}
	case errors.Is(err, model.ErrRoundEnded):
		return &httpError{http.StatusConflict, APIError{CodeRoundEnded, "Round has already ended"}}
	case errors.Is(err, model.ErrRoundExpired):
		return &httpError{http.StatusConflict, APIError{CodeRoundExpired, "Time is up, end the round to see the results"}}
	case errors.Is(err, model.ErrDictionaryNotLoaded), errors.Is(err, model.ErrDictionaryNotFound):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeDictionaryNotLoaded, "Dictionary not loaded"}}
	case errors.Is(err, model.ErrInvalidBoard), errors.Is(err, model.ErrInvalidLetter):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBoard, err.Error()}}
	case errors.Is(err, model.ErrGenerationFailed):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeGenerationFailed, "Could not deal a board"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
