// Package config loads CUFinder client settings from the environment and
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	cufinder "github.com/cufinder/cufinder-go"
)

// Environment variable names.
const (
	EnvAPIKey     = "CUFINDER_API_KEY"
	EnvBaseURL    = "CUFINDER_BASE_URL"
	EnvTimeout    = "CUFINDER_TIMEOUT"
	EnvMaxRetries = "CUFINDER_MAX_RETRIES"
	EnvRetry      = "CUFINDER_RETRY"
	EnvEncoding   = "CUFINDER_ENCODING"
	EnvLogLevel   = "CUFINDER_LOG_LEVEL"
	EnvLogFormat  = "CUFINDER_LOG_FORMAT"
)

// Config holds process-level client settings.
type Config struct {
	APIKey     string        `envconfig:"CUFINDER_API_KEY"`
	BaseURL    string        `envconfig:"CUFINDER_BASE_URL" default:"https://api.cufinder.io/v2"`
	Timeout    time.Duration `envconfig:"CUFINDER_TIMEOUT" default:"30s"`
	MaxRetries int           `envconfig:"CUFINDER_MAX_RETRIES" default:"3"`
	// Retry attaches the default retry policy. Without it MaxRetries is
	// recorded but unused.
	Retry     bool   `envconfig:"CUFINDER_RETRY" default:"false"`
	Encoding  string `envconfig:"CUFINDER_ENCODING" default:"json"`
	LogLevel  string `envconfig:"CUFINDER_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"CUFINDER_LOG_FORMAT" default:"json"`
}

// Load reads a .env file from the working directory, or the given files,
// when present and then parses the environment. Variables already set in
// the environment take precedence over file values.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot.
func (c *Config) Validate() error {
	if _, err := cufinder.ParseEncoding(c.Encoding); err != nil {
		return fmt.Errorf("%s: %w", EnvEncoding, err)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%s must not be negative", EnvTimeout)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("%s must not be negative", EnvMaxRetries)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("%s: unknown format %q (want json or console)", EnvLogFormat, c.LogFormat)
	}
	return nil
}

// ClientOptions converts the settings to client options. The API key is
// passed to cufinder.New separately.
func (c *Config) ClientOptions() []cufinder.Option {
	encoding, _ := cufinder.ParseEncoding(c.Encoding)

	opts := []cufinder.Option{
		cufinder.WithBaseURL(c.BaseURL),
		cufinder.WithTimeout(c.Timeout),
		cufinder.WithMaxRetries(c.MaxRetries),
		cufinder.WithEncoding(encoding),
	}
	if c.Retry {
		policy := cufinder.DefaultRetryPolicy()
		policy.MaxRetries = c.MaxRetries
		opts = append(opts, cufinder.WithRetryPolicy(policy))
	}
	return opts
}

// NewClient builds a client from the settings. extra options are applied
// after the configured ones.
func (c *Config) NewClient(extra ...cufinder.Option) (*cufinder.Client, error) {
	return cufinder.New(c.APIKey, append(c.ClientOptions(), extra...)...)
}
