// Package apierrors provides shared error types for the CUFinder client.
package apierrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCreditLimitExceeded is returned when the account has no credits left.
	ErrCreditLimitExceeded = errors.New("credit limit exceeded")

	// ErrValidation is returned when a required parameter is missing.
	ErrValidation = errors.New("validation failed")

	// ErrDecode is returned when a response body cannot be decoded.
	ErrDecode = errors.New("response decode failed")

	// ErrEncode is returned when request parameters cannot be serialized.
	ErrEncode = errors.New("request encode failed")

	// ErrInvalidBaseURL is returned when the base URL cannot address the API.
	ErrInvalidBaseURL = errors.New("invalid base URL")
)

// APIError represents a non-2xx HTTP response from the CUFinder API.
// Message holds the raw response body.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
		}
		return fmt.Sprintf("API error %d (request_id: %s)", e.StatusCode, e.RequestID)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 402:
		return target == ErrCreditLimitExceeded
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// CUFinderError implements the CUFinderError interface.
func (e *APIError) CUFinderError() {}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// CUFinderError implements the CUFinderError interface.
func (e *NetworkError) CUFinderError() {}

// ValidationError reports the first missing required parameter.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Is implements errors.Is for sentinel error matching.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// CUFinderError implements the CUFinderError interface.
func (e *ValidationError) CUFinderError() {}

// DecodeError represents a response that could not be turned into the
// expected shape: malformed JSON, a missing required key or a type mismatch.
type DecodeError struct {
	Operation string
	Field     string
	Err       error
}

func (e *DecodeError) Error() string {
	prefix := "decode response"
	if e.Operation != "" {
		prefix = fmt.Sprintf("decode %s response", e.Operation)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: missing field %q", prefix, e.Field)
	}
	return fmt.Sprintf("%s: %v", prefix, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// CUFinderError implements the CUFinderError interface.
func (e *DecodeError) CUFinderError() {}

// EncodeError represents a failure to serialize request parameters.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode request: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *EncodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EncodeError) Is(target error) bool {
	return target == ErrEncode
}

// CUFinderError implements the CUFinderError interface.
func (e *EncodeError) CUFinderError() {}
