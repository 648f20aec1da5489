package exa

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned before any network call when no API key is
// configured. Every operation checks this first.
var ErrMissingAPIKey = errors.New("EXA_API_KEY environment variable is not set")

// ErrNoContent is returned when the contents endpoint answered with an empty
// result list for an operation that expects at least one page.
var ErrNoContent = errors.New("no content returned from Exa for the given URL")

// ValidationError reports a missing or malformed argument. It is raised
// before any request is issued.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NewValidationError builds a ValidationError with fmt-style formatting.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// HTTPError is a non-2xx response from the Exa API. The body is retained so
// callers can surface the upstream detail.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("exa API returned status %d: %s", e.StatusCode, e.Body)
}

// UnavailableError is a network-level failure (timeout, connection refused)
// reaching the Exa API.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("exa API unreachable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }
