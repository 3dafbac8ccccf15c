package monitoring

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics records one histogram and one summary observation per
// inbound request. The registry is injected so tests can use isolated
// registries instead of a process global.
type HTTPMetrics struct {
	duration  *prometheus.HistogramVec
	quantiles *prometheus.SummaryVec
}

var labels = []string{"proto", "method", "route", "status"}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_requests_duration_seconds",
			Help:    "Duration of inbound http requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, labels),
		quantiles: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Name:       "http_requests_duration_quantiles_seconds",
			Help:       "Duration quantiles of inbound http requests in seconds",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}, labels),
	}

	reg.MustRegister(m.duration, m.quantiles)

	return m
}

// Middleware observes request duration on response completion and
// writes one structured access log line per request. Route labels use
// the chi route pattern, never the raw URL, to keep label cardinality
// bounded.
func Middleware(m *HTTPMetrics, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			started := time.Now()

			defer func() {
				elapsed := time.Since(started).Seconds()

				route := chi.RouteContext(r.Context()).RoutePattern()
				if route == "" {
					route = "unknown"
				}

				status := strconv.Itoa(ww.Status())

				m.duration.WithLabelValues(r.Proto, r.Method, route, status).Observe(elapsed)
				m.quantiles.WithLabelValues(r.Proto, r.Method, route, status).Observe(elapsed)

				log.Info("handled request",
					slog.String("proto", r.Proto),
					slog.String("method", r.Method),
					slog.String("route", route),
					slog.String("status", status),
					slog.Float64("duration_seconds", elapsed),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
