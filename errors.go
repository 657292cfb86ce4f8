package cufinder

import (
	"github.com/cufinder/cufinder-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrUnauthorized is returned for HTTP 401: the API key was rejected.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrRateLimited is returned for HTTP 429.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrCreditLimitExceeded is returned for HTTP 402: the account is out of credits.
	ErrCreditLimitExceeded = apierrors.ErrCreditLimitExceeded

	// ErrValidation is returned when a required parameter is empty.
	ErrValidation = apierrors.ErrValidation

	// ErrDecode is returned when a response is malformed, lacks a required
	// key or does not match the expected shape.
	ErrDecode = apierrors.ErrDecode

	// ErrEncode is returned when parameters cannot be serialized.
	ErrEncode = apierrors.ErrEncode

	// ErrInvalidBaseURL is returned by New when WithBaseURL is not an
	// absolute http or https URL.
	ErrInvalidBaseURL = apierrors.ErrInvalidBaseURL
)

// CUFinderError is implemented by all SDK errors.
type CUFinderError interface {
	error
	CUFinderError() // marker method
}

// APIError represents a non-2xx HTTP response. Message holds the raw body.
type APIError = apierrors.APIError

// NetworkError represents a transport failure. It unwraps to the cause, so
// errors.Is(err, context.DeadlineExceeded) works for timeouts.
type NetworkError = apierrors.NetworkError

// ValidationError names the first required parameter that was empty.
type ValidationError = apierrors.ValidationError

// DecodeError represents a response that could not be decoded.
type DecodeError = apierrors.DecodeError

// EncodeError represents a failure to serialize request parameters.
type EncodeError = apierrors.EncodeError
