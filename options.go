package cufinder

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/cufinder/cufinder-go/internal/api"
)

// Encoding selects the request wire format.
type Encoding = api.Encoding

const (
	// EncodingJSON sends JSON bodies with an Authorization bearer token.
	EncodingJSON = api.EncodingJSON
	// EncodingForm sends URL-encoded form bodies with an x-api-key header.
	EncodingForm = api.EncodingForm
)

// ParseEncoding converts "json" or "form" to an Encoding. The empty string
// selects EncodingJSON.
func ParseEncoding(s string) (Encoding, error) {
	return api.ParseEncoding(s)
}

// RetryPolicy configures opt-in retries with exponential backoff.
type RetryPolicy = api.RetryConfig

// DefaultRetryPolicy returns a policy retrying transport failures and HTTP
// 408, 429, 500, 502, 503 and 504 up to three times.
func DefaultRetryPolicy() *RetryPolicy {
	return api.DefaultRetryConfig()
}

const (
	defaultBaseURL    = api.DefaultBaseURL
	defaultTimeout    = api.DefaultTimeout
	defaultMaxRetries = api.DefaultMaxRetries
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL     string
	httpClient  *http.Client
	timeout     time.Duration
	maxRetries  int
	retryPolicy *RetryPolicy
	encoding    Encoding
	userAgent   string
	logger      *zerolog.Logger
	registerer  prometheus.Registerer
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. Its own Timeout applies instead
// of the one set by WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout.
// Default: 30 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithMaxRetries sets the retry budget. It has no effect unless a retry
// policy is attached with WithRetryPolicy.
// Default: 3
func WithMaxRetries(count int) Option {
	return func(c *clientConfig) {
		c.maxRetries = count
	}
}

// WithRetryPolicy enables retries. A policy with MaxRetries of zero uses the
// value from WithMaxRetries.
func WithRetryPolicy(policy *RetryPolicy) Option {
	return func(c *clientConfig) {
		c.retryPolicy = policy
	}
}

// WithEncoding sets the wire encoding.
// Default: EncodingJSON
func WithEncoding(encoding Encoding) Option {
	return func(c *clientConfig) {
		c.encoding = encoding
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *clientConfig) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger used for request diagnostics. The client is
// silent by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = &logger
	}
}

// WithMetrics registers call metrics on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *clientConfig) {
		c.registerer = reg
	}
}
