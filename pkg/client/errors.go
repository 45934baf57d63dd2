package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the client.
var (
	// ErrMissingAPIKey is returned when no API key is configured.
	ErrMissingAPIKey = errors.New("missing API key: set " + EnvAPIKey)

	// ErrInvalidParameter is returned when a request cannot be built from the
	// given arguments. No network call is made.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrContextCancelled is returned when the context is cancelled during
	// retry backoff or request pacing.
	ErrContextCancelled = errors.New("context cancelled")
)

// ErrorClass represents a classification of request failures.
type ErrorClass string

const (
	// ErrorClassClient represents 4xx client errors other than 429.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx server errors.
	ErrorClassServer ErrorClass = "server"

	// ErrorClassRateLimit represents 429 Too Many Requests.
	ErrorClassRateLimit ErrorClass = "rate_limit"

	// ErrorClassNetwork represents network/timeout errors.
	ErrorClassNetwork ErrorClass = "network"

	// ErrorClassParse represents responses that do not match the expected schema.
	ErrorClassParse ErrorClass = "parse"
)

// classifyStatus maps a non-2xx HTTP status to an error class.
func classifyStatus(status int) ErrorClass {
	switch {
	case status == http.StatusTooManyRequests:
		return ErrorClassRateLimit
	case status >= 500:
		return ErrorClassServer
	default:
		return ErrorClassClient
	}
}

// TransportError is a failure to send the request or read the response.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("parcl request failed (%s %s): %v", e.Method, e.URL, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// RateLimitError is returned when the server kept answering 429 after every
// retry was used.
type RateLimitError struct {
	// Attempts is the total number of requests sent, the first one included.
	Attempts int

	// Message is the body of the last 429 response.
	Message string
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	return fmt.Sprintf("parcl rate limited after %d attempts: %s", e.Attempts, e.Message)
}

// APIError is a non-2xx, non-429 response.
type APIError struct {
	StatusCode int

	// Message is the raw response body.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("parcl %s error (status %d): %s", classifyStatus(e.StatusCode), e.StatusCode, e.Message)
}

// ErrorClass returns the classification of the status code.
func (e *APIError) ErrorClass() ErrorClass {
	return classifyStatus(e.StatusCode)
}

// ParseError is a 2xx response whose body could not be decoded.
type ParseError struct {
	Operation string
	Err       error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parcl response for %s could not be parsed: %v", e.Operation, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// invalidParam builds an ErrInvalidParameter with detail.
func invalidParam(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
