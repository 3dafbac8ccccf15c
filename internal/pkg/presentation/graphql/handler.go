package graphql

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/graphql-go/handler"
)

// RegisterHandlers mounts the graphql endpoint and an interactive
// playground on the given router.
func RegisterHandlers(router *chi.Mux, gw *Gateway) *chi.Mux {
	probe := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
	router.Get("/liveness", probe)
	router.Get("/readiness", probe)

	router.Handle("/graphql", handler.New(&handler.Config{
		Schema: gw.Schema(),
		Pretty: true,
	}))

	router.Handle("/playground", handler.New(&handler.Config{
		Schema:     gw.Schema(),
		Pretty:     true,
		Playground: true,
	}))

	return router
}
