package client

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func sampleCount(t *testing.T, m *Metrics, op, success string) uint64 {
	t.Helper()

	var metric dto.Metric
	h, err := m.latency.GetMetricWithLabelValues(op, success)
	if err != nil {
		t.Fatal(err)
	}
	if err := h.(prometheus.Histogram).Write(&metric); err != nil {
		t.Fatal(err)
	}

	return metric.GetHistogram().GetSampleCount()
}

func TestExecRecordsExactlyOneObservation(t *testing.T) {
	is := is.New(t)
	m := NewMetrics(prometheus.NewRegistry())

	result, err := exec(context.Background(), m, "get-site", "site-svc", func(ctx context.Context) (string, error) {
		return "ok", nil
	})

	is.NoErr(err)
	is.Equal("ok", result)
	is.Equal(uint64(1), sampleCount(t, m, "get-site", "true"))
	is.Equal(uint64(0), sampleCount(t, m, "get-site", "false"))
}

func TestExecLabelsFailuresAndReturnsErrorVerbatim(t *testing.T) {
	is := is.New(t)
	m := NewMetrics(prometheus.NewRegistry())

	boom := errors.New("backend unavailable")

	_, err := exec(context.Background(), m, "get-site", "site-svc", func(ctx context.Context) (string, error) {
		return "", boom
	})

	is.True(errors.Is(err, boom))
	is.Equal(uint64(1), sampleCount(t, m, "get-site", "false"))
}
