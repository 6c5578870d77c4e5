package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Standard sentinel errors for common cases.
var (
	ErrNotReady   = errors.New("data not ready")
	ErrNotFound   = errors.New("resource not found")
	ErrBadRequest = errors.New("bad request")
)

// APIError is a structured application error carrying the HTTP status and the
// human-readable message surfaced to clients.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NotReady creates the 503 error returned while the catalog is still loading.
func NotReady() *APIError {
	return &APIError{
		Status:  http.StatusServiceUnavailable,
		Message: "Data is loading, please retry shortly.",
		Err:     ErrNotReady,
	}
}

// NotFound creates a 404 error with the given message.
func NotFound(message string) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Message: message,
		Err:     ErrNotFound,
	}
}

// BadRequest creates a 400 error with the given message.
func BadRequest(message string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: message,
		Err:     ErrBadRequest,
	}
}

// HTTPStatus returns the HTTP status code for the given error.
func HTTPStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}

	switch {
	case errors.Is(err, ErrNotReady):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
