package cufinder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cufinder/cufinder-go/internal/api"
)

// Client is a CUFinder API client. It is safe for concurrent use.
type Client struct {
	apiClient *api.Client
	metrics   *clientMetrics
	logger    zerolog.Logger
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	return api.NewClient(api.Config{
		APIKey:     apiKey,
		BaseURL:    cfg.baseURL,
		Timeout:    cfg.timeout,
		MaxRetries: cfg.maxRetries,
		Retry:      cfg.retryPolicy,
		Encoding:   cfg.encoding,
		UserAgent:  cfg.userAgent,
		HTTPClient: cfg.httpClient,
		Logger:     cfg.logger,
	})
}

// New creates a new CUFinder client with the given API key. No request is
// made until an operation is called.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL:    defaultBaseURL,
		timeout:    defaultTimeout,
		maxRetries: defaultMaxRetries,
		encoding:   EncodingJSON,
		userAgent:  "cufinder-go/" + Version,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	metrics, err := newClientMetrics(cfg.registerer)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	logger := zerolog.Nop()
	if cfg.logger != nil {
		logger = *cfg.logger
	}

	return &Client{
		apiClient: apiClient,
		metrics:   metrics,
		logger:    logger,
	}, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string { return c.apiClient.BaseURL() }

// Timeout returns the per-request timeout. With WithHTTPClient this is the
// injected client's Timeout, where zero means no limit.
func (c *Client) Timeout() time.Duration { return c.apiClient.Timeout() }

// MaxRetries returns the configured retry budget.
func (c *Client) MaxRetries() int { return c.apiClient.MaxRetries() }

// Encoding returns the wire encoding in use.
func (c *Client) Encoding() Encoding { return c.apiClient.Encoding() }

// creditReporter is implemented by every response through BaseResponse.
type creditReporter interface {
	CreditsUsed() int
}

// call runs one operation: validate params, send them, check the payload
// carries every key the operation returns and decode it into R.
func call[P, R any](ctx context.Context, c *Client, op *Operation, params P) (*R, error) {
	start := time.Now()
	result, err := execute[P, R](ctx, c, op, params)

	credits := 0
	if result != nil {
		if cr, ok := any(result).(creditReporter); ok {
			credits = cr.CreditsUsed()
		}
	}
	elapsed := time.Since(start)
	c.metrics.observe(op.Code, elapsed, credits, err)

	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("operation", op.Code).
			Dur("duration", elapsed).
			Msg("cufinder call failed")
		return nil, err
	}
	c.logger.Debug().
		Str("operation", op.Code).
		Int("credits", credits).
		Dur("duration", elapsed).
		Msg("cufinder call")
	return result, nil
}

func execute[P, R any](ctx context.Context, c *Client, op *Operation, params P) (*R, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	payload, err := c.apiClient.Send(ctx, op.Path, params)
	if err != nil {
		return nil, err
	}

	if err := checkReturns(op, payload); err != nil {
		return nil, err
	}

	var result R
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, &DecodeError{Operation: op.Code, Err: err}
	}
	return &result, nil
}

// checkReturns verifies the payload is an object carrying a non-null value
// for every key in op.Returns.
func checkReturns(op *Operation, payload json.RawMessage) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return &DecodeError{Operation: op.Code, Err: err}
	}
	if fields == nil {
		return &DecodeError{Operation: op.Code, Err: fmt.Errorf("expected an object, got %s", payload)}
	}
	for _, key := range op.Returns {
		value, ok := fields[key]
		if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			return &DecodeError{Operation: op.Code, Field: key}
		}
	}
	return nil
}
