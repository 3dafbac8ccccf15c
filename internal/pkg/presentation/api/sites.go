package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"log/slog"

	"github.com/diwise/iot-facility-mgmt/internal/pkg/application/sites"
	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

var siteTracer = otel.Tracer("iot-facility-mgmt/site-api")

func RegisterSiteHandlers(ctx context.Context, router *chi.Mux, svc sites.SiteService, production bool) *chi.Mux {
	log := logging.GetFromContext(ctx)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/v1/sites", func(r chi.Router) {
		r.Post("/", createSiteHandler(log, svc, production))
		r.Get("/", querySitesHandler(log, svc, production))
		r.Get("/{siteID}", getSiteHandler(log, svc, production))
		r.Put("/{siteID}", updateSiteHandler(log, svc, production))
		r.Patch("/{siteID}", patchSiteHandler(log, svc, production))
		r.Delete("/{siteID}", deleteSiteHandler(log, svc, production))
	})

	return router
}

func createSiteHandler(log *slog.Logger, svc sites.SiteService, production bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := siteTracer.Start(r.Context(), "create-site")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var site types.Site
		err = json.Unmarshal(body, &site)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}

		site, err = svc.Create(ctx, site)
		if err != nil {
			requestLogger.Error("unable to create site", "err", err.Error())
			writeInternalError(w, err, production)
			return
		}

		writeJSON(w, requestLogger, http.StatusCreated, site)
	}
}

func querySitesHandler(log *slog.Logger, svc sites.SiteService, production bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := siteTracer.Start(r.Context(), "query-sites")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		limit, skip := parseLimitSkip(r)

		filter := types.SiteFilter{
			Name:     r.URL.Query().Get("name"),
			Location: r.URL.Query().Get("location"),
			Tags:     parseTags(r),
			Limit:    limit,
			Skip:     skip,
		}

		result, err := svc.Query(ctx, filter)
		if err != nil {
			requestLogger.Error("unable to query sites", "err", err.Error())
			writeInternalError(w, err, production)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, result)
	}
}

func getSiteHandler(log *slog.Logger, svc sites.SiteService, production bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := siteTracer.Start(r.Context(), "get-site")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		siteID := chi.URLParam(r, "siteID")
		if siteID != "" {
			requestLogger = requestLogger.With(slog.String("site_id", siteID))
		}

		site, err := svc.GetByID(ctx, siteID)
		if errors.Is(err, sites.ErrSiteNotFound) {
			requestLogger.Debug("site not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch site", "err", err.Error())
			writeInternalError(w, err, production)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, site)
	}
}

func updateSiteHandler(log *slog.Logger, svc sites.SiteService, production bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := siteTracer.Start(r.Context(), "update-site")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		siteID := chi.URLParam(r, "siteID")
		if siteID != "" {
			requestLogger = requestLogger.With(slog.String("site_id", siteID))
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var site types.Site
		err = json.Unmarshal(body, &site)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}

		// ids are immutable, the path parameter wins
		site.ID = siteID

		err = svc.Update(ctx, site)
		if errors.Is(err, sites.ErrSiteNotFound) {
			requestLogger.Debug("site not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to update site", "err", err.Error())
			writeInternalError(w, err, production)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func patchSiteHandler(log *slog.Logger, svc sites.SiteService, production bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := siteTracer.Start(r.Context(), "patch-site")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		siteID := chi.URLParam(r, "siteID")
		if siteID != "" {
			requestLogger = requestLogger.With(slog.String("site_id", siteID))
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var fields map[string]any
		err = json.Unmarshal(body, &fields)
		if err != nil {
			requestLogger.Error("unable to unmarshal body into map", "err", err.Error())
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}

		site, err := svc.Merge(ctx, siteID, fields)
		if errors.Is(err, sites.ErrSiteNotFound) {
			requestLogger.Debug("site not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to patch site", "err", err.Error())
			writeInternalError(w, err, production)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, site)
	}
}

func deleteSiteHandler(log *slog.Logger, svc sites.SiteService, production bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := siteTracer.Start(r.Context(), "delete-site")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		siteID := chi.URLParam(r, "siteID")
		if siteID != "" {
			requestLogger = requestLogger.With(slog.String("site_id", siteID))
		}

		err = svc.Delete(ctx, siteID)
		if errors.Is(err, sites.ErrSiteNotFound) {
			requestLogger.Debug("site not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to delete site", "err", err.Error())
			writeInternalError(w, err, production)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, map[string]bool{"deleted": true})
	}
}
