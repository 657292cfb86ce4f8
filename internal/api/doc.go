// Package api provides the HTTP request pipeline for the CUFinder API. It
// handles authentication, request serialization, HTTP status classification
// and unwrapping of the response envelope.
//
// # Wire Encodings
//
// Two encodings are supported, each with its own auth header:
//
//   - [EncodingJSON] (default): JSON body, Authorization: Bearer <key>.
//   - [EncodingForm]: URL-encoded form body, x-api-key: <key>.
//
// Form bodies are produced from the same json struct tags as JSON bodies, so
// a parameter struct declares its wire names once.
//
// # Response Envelope
//
// Responses may wrap the payload in a "data" key with an optional sibling
// "meta_data" key. [Client.Send] returns the contents of "data" with
// "meta_data" merged in when both are present and "data" is an object.
// Responses without "data" are returned unchanged.
//
// # Error Handling
//
// Non-2xx responses become an *apierrors.APIError carrying the status code
// and the raw body. Use errors.Is to branch on the category:
//
//   - 401: apierrors.ErrUnauthorized
//   - 402: apierrors.ErrCreditLimitExceeded
//   - 429: apierrors.ErrRateLimited
//
// # Retry Behavior
//
// Requests are sent exactly once unless a [RetryConfig] is attached through
// [Config.Retry]. With a policy attached, transport failures and the statuses
// 408, 429, 500, 502, 503 and 504 are retried with exponential backoff.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Its configuration is fixed
// at construction.
package api
