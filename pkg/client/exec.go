package client

import (
	"context"
	"errors"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("iot-facility-mgmt/client")

// ErrNotFound is returned by Get operations when the backend reports that
// no record exists with the given id.
var ErrNotFound = errors.New("not found")

// Metrics holds the latency instruments shared by all service clients.
// Both a histogram and a summary are kept so that dashboards can choose
// between aggregatable buckets and precomputed quantiles.
type Metrics struct {
	latency   *prometheus.HistogramVec
	quantiles *prometheus.SummaryVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "graphql_operations_latency_seconds",
				Help:    "Latency of outbound service operations in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op", "success"},
		),
		quantiles: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name:       "graphql_operations_latency_quantiles_seconds",
				Help:       "Latency quantiles of outbound service operations in seconds.",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			},
			[]string{"op", "success"},
		),
	}

	reg.MustRegister(m.latency, m.quantiles)

	return m
}

func (m *Metrics) observe(op string, success bool, seconds float64) {
	label := "true"
	if !success {
		label = "false"
	}

	m.latency.WithLabelValues(op, label).Observe(seconds)
	m.quantiles.WithLabelValues(op, label).Observe(seconds)
}

// exec wraps a single outbound call in a client span and records exactly
// one histogram and one summary observation for it. The result and error
// of fn are passed through untouched.
func exec[T any](ctx context.Context, m *Metrics, op, peer string, fn func(context.Context) (T, error)) (T, error) {
	var err error

	ctx, span := tracer.Start(ctx, op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("peer.service", peer)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	started := time.Now()

	result, err := fn(ctx)

	m.observe(op, err == nil, time.Since(started).Seconds())

	if err == nil {
		span.AddEvent("successful!")
	} else {
		span.AddEvent(err.Error())
	}

	return result, err
}
