package monitoring

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func observedSamples(t *testing.T, m *HTTPMetrics, proto, method, route, status string) uint64 {
	t.Helper()

	var metric dto.Metric
	h, err := m.duration.GetMetricWithLabelValues(proto, method, route, status)
	if err != nil {
		t.Fatal(err)
	}
	if err := h.(prometheus.Histogram).Write(&metric); err != nil {
		t.Fatal(err)
	}

	return metric.GetHistogram().GetSampleCount()
}

func TestMiddlewareObservesWithRoutePatternLabel(t *testing.T) {
	is := is.New(t)

	m := NewHTTPMetrics(prometheus.NewRegistry())
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	r.Use(Middleware(m, log))
	r.Get("/v1/sites/{siteID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/sites/site-01", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	is.Equal(uint64(1), observedSamples(t, m, req.Proto, http.MethodGet, "/v1/sites/{siteID}", "200"))
}

func TestMiddlewareLabelsResponseStatus(t *testing.T) {
	is := is.New(t)

	m := NewHTTPMetrics(prometheus.NewRegistry())
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	r.Use(Middleware(m, log))
	r.Get("/v1/sites/{siteID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/sites/nosuchsite", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	is.Equal(uint64(1), observedSamples(t, m, req.Proto, http.MethodGet, "/v1/sites/{siteID}", "404"))
	is.Equal(uint64(0), observedSamples(t, m, req.Proto, http.MethodGet, "/v1/sites/{siteID}", "200"))
}
