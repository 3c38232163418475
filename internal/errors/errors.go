package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user record is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering or editing to an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid, expired, or revoked.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrMissingFields is returned when a required request field is absent.
	ErrMissingFields = errors.New("email and password are required")
)

// MessageResponse is the uniform failure (and simple success) body: a status
// code plus a human-readable message, nothing more.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationResponse carries per-field registration errors.
type ValidationResponse struct {
	Errors map[string]string `json:"errors"`
}

// HTTPError pairs a domain error message with a status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
