package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/riandyrn/otelchi"
	"github.com/rs/cors"
)

// New creates a router with cors and otel tracing enabled. The otelchi
// middleware extracts any upstream trace context and opens the root
// span for each request, so it must run before any middleware that
// wants a span on the request context.
func New(serviceName string, middlewares ...func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))

	for _, mw := range middlewares {
		r.Use(mw)
	}

	return r
}
