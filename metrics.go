package cufinder

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values for cufinder_requests_total.
const (
	outcomeOK           = "ok"
	outcomeValidation   = "validation_error"
	outcomeUnauthorized = "unauthorized"
	outcomeRateLimited  = "rate_limited"
	outcomeCreditLimit  = "credit_limit"
	outcomeAPIError     = "api_error"
	outcomeNetwork      = "network_error"
	outcomeDecode       = "decode_error"
	outcomeEncode       = "encode_error"
	outcomeError        = "error"
)

// clientMetrics records per-operation call statistics. A nil *clientMetrics
// records nothing.
type clientMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	credits  *prometheus.CounterVec
}

// newClientMetrics registers the client collectors on reg. Collectors that
// are already registered, e.g. by another client sharing the registry, are
// reused.
func newClientMetrics(reg prometheus.Registerer) (*clientMetrics, error) {
	if reg == nil {
		return nil, nil
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cufinder_requests_total",
		Help: "CUFinder API calls by operation and outcome.",
	}, []string{"operation", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cufinder_request_duration_seconds",
		Help:    "Duration of CUFinder API calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	credits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cufinder_credits_consumed_total",
		Help: "Credits reported as consumed by CUFinder responses.",
	}, []string{"operation"})

	var err error
	if requests, err = register(reg, requests); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if credits, err = register(reg, credits); err != nil {
		return nil, err
	}

	return &clientMetrics{
		requests: requests,
		duration: duration,
		credits:  credits,
	}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *clientMetrics) observe(op string, d time.Duration, credits int, err error) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(op, outcome(err)).Inc()
	m.duration.WithLabelValues(op).Observe(d.Seconds())
	if err == nil && credits > 0 {
		m.credits.WithLabelValues(op).Add(float64(credits))
	}
}

func outcome(err error) string {
	if err == nil {
		return outcomeOK
	}

	switch {
	case errors.Is(err, ErrValidation):
		return outcomeValidation
	case errors.Is(err, ErrUnauthorized):
		return outcomeUnauthorized
	case errors.Is(err, ErrRateLimited):
		return outcomeRateLimited
	case errors.Is(err, ErrCreditLimitExceeded):
		return outcomeCreditLimit
	case errors.Is(err, ErrDecode):
		return outcomeDecode
	case errors.Is(err, ErrEncode):
		return outcomeEncode
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return outcomeAPIError
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return outcomeNetwork
	}
	return outcomeError
}
