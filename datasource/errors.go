package datasource

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds returned by the OpenWeatherMap client. Every error the client
// returns matches exactly one of them with errors.Is.
var (
	ErrNotFound       = errors.New("location not found")
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnauthorized   = errors.New("invalid or missing credential")
	ErrRateLimited    = errors.New("rate limited by provider")
	ErrUnavailable    = errors.New("provider unavailable")
	ErrMalformed      = errors.New("malformed provider response")
)

// APIError represents a non-success HTTP status returned by the provider
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps the status code to its error kind
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusUnauthorized, e.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case e.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case e.StatusCode >= 400 && e.StatusCode < 500:
		return ErrInvalidRequest
	default:
		return ErrUnavailable
	}
}

// NetworkError represents a transport failure, including timeouts
type NetworkError struct {
	Operation string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is reports every network error as ErrUnavailable
func (e *NetworkError) Is(target error) bool {
	return target == ErrUnavailable
}

// Kind returns a short name for the error kind of err, used in log lines and
// metric attributes.
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	default:
		return "unavailable"
	}
}

// Retryable reports whether another attempt could succeed
func Retryable(err error) bool {
	return errors.Is(err, ErrUnavailable) || errors.Is(err, ErrRateLimited)
}
