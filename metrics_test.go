package cufinder

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestMetrics_SuccessfulCall(t *testing.T) {
	reg := prometheus.NewRegistry()
	client, _ := newTestClient(t, "/cuf", `{"domain":"techcorp.com","credit_count":2}`, WithMetrics(reg))

	if _, err := client.CUF(context.Background(), CUFParams{CompanyName: "TechCorp", CountryCode: "US"}); err != nil {
		t.Fatalf("CUF() error = %v", err)
	}

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "cufinder_requests_total", map[string]string{"operation": "CUF", "outcome": "ok"}); err != nil {
		t.Fatalf("fetch requests: %v", err)
	} else if got != 1 {
		t.Fatalf("expected requests=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "cufinder_credits_consumed_total", map[string]string{"operation": "CUF"}); err != nil {
		t.Fatalf("fetch credits: %v", err)
	} else if got != 2 {
		t.Fatalf("expected credits=2, got %f", got)
	}

	if got, err := fetchHistogramCount(mfs, "cufinder_request_duration_seconds", map[string]string{"operation": "CUF"}); err != nil {
		t.Fatalf("fetch duration: %v", err)
	} else if got != 1 {
		t.Fatalf("expected duration count=1, got %d", got)
	}
}

func TestMetrics_FailedCalls(t *testing.T) {
	reg := prometheus.NewRegistry()
	client, _ := newTestClient(t, "/cuf", `{"query":"TechCorp"}`, WithMetrics(reg))

	client.CUF(context.Background(), CUFParams{})
	client.CUF(context.Background(), CUFParams{CompanyName: "TechCorp", CountryCode: "US"})

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	for _, outcome := range []string{outcomeValidation, outcomeDecode} {
		got, err := fetchCounterValue(mfs, "cufinder_requests_total", map[string]string{"operation": "CUF", "outcome": outcome})
		if err != nil {
			t.Fatalf("fetch %s: %v", outcome, err)
		}
		if got != 1 {
			t.Errorf("outcome %s = %f, want 1", outcome, got)
		}
	}

	if mf := findMetricFamily(mfs, "cufinder_credits_consumed_total"); mf != nil && len(mf.GetMetric()) > 0 {
		t.Error("failed calls should not record credits")
	}
}

func TestMetrics_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()

	first, _ := newTestClient(t, "/cuf", `{"domain":"techcorp.com"}`, WithMetrics(reg))
	second, _ := newTestClient(t, "/cuf", `{"domain":"techcorp.com"}`, WithMetrics(reg))

	params := CUFParams{CompanyName: "TechCorp", CountryCode: "US"}
	first.CUF(context.Background(), params)
	second.CUF(context.Background(), params)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	got, err := fetchCounterValue(mfs, "cufinder_requests_total", map[string]string{"operation": "CUF", "outcome": "ok"})
	if err != nil {
		t.Fatalf("fetch requests: %v", err)
	}
	if got != 2 {
		t.Errorf("expected requests=2, got %f", got)
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, outcomeOK},
		{&ValidationError{Field: "query"}, outcomeValidation},
		{&APIError{StatusCode: 401}, outcomeUnauthorized},
		{&APIError{StatusCode: 402}, outcomeCreditLimit},
		{&APIError{StatusCode: 429}, outcomeRateLimited},
		{&APIError{StatusCode: 500}, outcomeAPIError},
		{&NetworkError{Err: context.DeadlineExceeded}, outcomeNetwork},
		{&DecodeError{Field: "domain"}, outcomeDecode},
		{&EncodeError{Err: fmt.Errorf("bad")}, outcomeEncode},
		{fmt.Errorf("other"), outcomeError},
	}

	for _, tt := range tests {
		if got := outcome(tt.err); got != tt.want {
			t.Errorf("outcome(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}

func fetchCounterValue(mfs []*dto.MetricFamily, name string, labels map[string]string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabels(metric.GetLabel(), labels) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing labels %v", name, labels)
}

func fetchHistogramCount(mfs []*dto.MetricFamily, name string, labels map[string]string) (uint64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabels(metric.GetLabel(), labels) {
			return metric.GetHistogram().GetSampleCount(), nil
		}
	}
	return 0, fmt.Errorf("histogram %q missing labels %v", name, labels)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabels(pairs []*dto.LabelPair, want map[string]string) bool {
	matched := 0
	for _, pair := range pairs {
		if v, ok := want[pair.GetName()]; ok && v == pair.GetValue() {
			matched++
		}
	}
	return matched == len(want)
}
