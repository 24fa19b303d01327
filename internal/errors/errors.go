package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingFields is returned when name, email or password is empty on user creation.
	ErrMissingFields = errors.New("name, email, password required")
	// ErrMissingCredentials is returned when email or password is empty on login.
	ErrMissingCredentials = errors.New("email and password required")
	// ErrPasswordTooLong is returned when a password exceeds what bcrypt can hash.
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
	// ErrNoFieldsToUpdate is returned when an update carries no recognized field.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	// ErrInvalidUserID is returned when a user id is not a positive integer.
	ErrInvalidUserID = errors.New("invalid user id")
	// ErrUserAlreadyExists is returned when the email is already taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized
// becomes a 500 without leaking the underlying message.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrMissingCredentials),
		errors.Is(err, ErrPasswordTooLong),
		errors.Is(err, ErrNoFieldsToUpdate),
		errors.Is(err, ErrInvalidUserID):
		return NewHTTPError(http.StatusBadRequest, unwrapSentinel(err))
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, ErrUserAlreadyExists.Error())
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}

// IsInternal reports whether err would be surfaced as a 500.
func IsInternal(err error) bool {
	return MapErrorToHTTP(err).StatusCode == http.StatusInternalServerError
}

func unwrapSentinel(err error) string {
	for _, sentinel := range []error{ErrMissingFields, ErrMissingCredentials, ErrPasswordTooLong, ErrNoFieldsToUpdate, ErrInvalidUserID} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
