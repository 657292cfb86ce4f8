package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cufinder/cufinder-go/internal/apierrors"
)

// Default configuration values.
const (
	DefaultBaseURL    = "https://api.cufinder.io/v2"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
	DefaultUserAgent  = "cufinder-go"
)

// RequestIDHeader carries the client-generated request ID.
const RequestIDHeader = "X-Request-Id"

// Config configures the API client.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration

	// MaxRetries is recorded for every client but only consulted when Retry
	// is set.
	MaxRetries int
	Retry      *RetryConfig

	Encoding   Encoding
	UserAgent  string
	HTTPClient *http.Client
	Logger     *zerolog.Logger
}

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	maxRetries int
	retry      *RetryConfig
	encoding   Encoding
	encoder    Encoder
	auth       AuthStrategy
	userAgent  string
	logger     zerolog.Logger
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, apierrors.ErrMissingAPIKey
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if err := checkBaseURL(baseURL); err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	encoding, err := ParseEncoding(string(cfg.Encoding))
	if err != nil {
		return nil, err
	}
	encoder, auth := newEncoding(encoding, cfg.APIKey)

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	} else {
		timeout = httpClient.Timeout
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	var retry *RetryConfig
	if cfg.Retry != nil {
		r := *cfg.Retry
		if r.MaxRetries == 0 {
			r.MaxRetries = maxRetries
		}
		retry = &r
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		timeout:    timeout,
		maxRetries: maxRetries,
		retry:      retry,
		encoding:   encoding,
		encoder:    encoder,
		auth:       auth,
		userAgent:  userAgent,
		logger:     logger,
	}, nil
}

// checkBaseURL rejects base URLs requests could not be built from.
func checkBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", apierrors.ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q needs an http or https scheme and a host", apierrors.ErrInvalidBaseURL, raw)
	}
	return nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Timeout returns the timeout applied by the HTTP client in use.
func (c *Client) Timeout() time.Duration { return c.timeout }

// MaxRetries returns the configured retry budget.
func (c *Client) MaxRetries() int { return c.maxRetries }

// Encoding returns the wire encoding in use.
func (c *Client) Encoding() Encoding { return c.encoding }

// Send POSTs params to path and returns the unwrapped JSON payload.
func (c *Client) Send(ctx context.Context, path string, params any) (json.RawMessage, error) {
	body, err := c.encoder.Encode(params)
	if err != nil {
		return nil, &apierrors.EncodeError{Err: err}
	}

	requestID := uuid.NewString()
	endpoint := c.baseURL + path

	for attempt := 0; ; attempt++ {
		payload, err := c.roundTrip(ctx, endpoint, path, body, requestID, attempt)
		if err == nil {
			return payload, nil
		}
		if c.retry == nil || !c.retry.ShouldRetryError(attempt, err) {
			return nil, err
		}

		c.logger.Warn().
			Err(err).
			Str("request_id", requestID).
			Str("path", path).
			Int("attempt", attempt+1).
			Msg("cufinder request failed, retrying")

		if waitErr := c.retry.Wait(ctx, attempt); waitErr != nil {
			return nil, err
		}
	}
}

func (c *Client) roundTrip(ctx context.Context, endpoint, path string, body []byte, requestID string, attempt int) (json.RawMessage, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bodyReader)
	if err != nil {
		return nil, &apierrors.EncodeError{Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("Content-Type", c.encoder.ContentType())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, requestID)
	c.auth.Apply(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("request_id", requestID).
			Str("path", path).
			Dur("duration", time.Since(start)).
			Msg("cufinder request")
		return nil, &apierrors.NetworkError{Err: err, URL: endpoint, Attempt: attempt + 1}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apierrors.NetworkError{Err: err, URL: endpoint, Attempt: attempt + 1}
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("cufinder request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apierrors.APIError{
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
			RequestID:  requestID,
		}
	}

	return unwrapEnvelope(respBody)
}
