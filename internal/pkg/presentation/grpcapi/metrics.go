package grpcapi

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// RPCMetrics records one histogram and one summary observation per
// handled rpc, labeled by full method name and status code.
type RPCMetrics struct {
	duration  *prometheus.HistogramVec
	quantiles *prometheus.SummaryVec
}

var labels = []string{"method", "code"}

func NewRPCMetrics(reg prometheus.Registerer) *RPCMetrics {
	m := &RPCMetrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "grpc_requests_duration_seconds",
			Help:    "Duration of handled rpcs in seconds",
			Buckets: prometheus.DefBuckets,
		}, labels),
		quantiles: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Name:       "grpc_requests_duration_quantiles_seconds",
			Help:       "Duration quantiles of handled rpcs in seconds",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}, labels),
	}

	reg.MustRegister(m.duration, m.quantiles)

	return m
}

func (m *RPCMetrics) observe(fullMethod string, err error, seconds float64) {
	code := status.Code(err).String()
	m.duration.WithLabelValues(fullMethod, code).Observe(seconds)
	m.quantiles.WithLabelValues(fullMethod, code).Observe(seconds)
}

func (m *RPCMetrics) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		started := time.Now()
		resp, err := handler(ctx, req)
		m.observe(info.FullMethod, err, time.Since(started).Seconds())
		return resp, err
	}
}

func (m *RPCMetrics) StreamInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		started := time.Now()
		err := handler(srv, ss)
		m.observe(info.FullMethod, err, time.Since(started).Seconds())
		return err
	}
}
