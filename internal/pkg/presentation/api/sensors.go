package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/diwise/iot-facility-mgmt/internal/pkg/application/sensors"
	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

var sensorTracer = otel.Tracer("iot-facility-mgmt/sensor-api")

func RegisterSensorHandlers(ctx context.Context, router *chi.Mux, svc sensors.SensorService, production bool) *chi.Mux {
	log := logging.GetFromContext(ctx)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/v1/sensors", func(r chi.Router) {
		r.Post("/", createSensorHandler(log, svc, production))
		r.Get("/", querySensorsHandler(log, svc, production))
		r.Get("/{sensorID}", getSensorHandler(log, svc, production))
		r.Put("/{sensorID}", updateSensorHandler(log, svc, production))
		r.Patch("/{sensorID}", patchSensorHandler(log, svc, production))
		r.Delete("/{sensorID}", deleteSensorHandler(log, svc, production))
	})

	return router
}

func createSensorHandler(log *slog.Logger, svc sensors.SensorService, production bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := sensorTracer.Start(r.Context(), "create-sensor")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var sensor types.Sensor
		err = json.Unmarshal(body, &sensor)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}

		sensor, err = svc.Create(ctx, sensor)
		if err != nil {
			requestLogger.Error("unable to create sensor", "err", err.Error())
			writeInternalError(w, err, production)
			return
		}

		writeJSON(w, requestLogger, http.StatusCreated, sensor)
	}
}

func querySensorsHandler(log *slog.Logger, svc sensors.SensorService, production bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := sensorTracer.Start(r.Context(), "query-sensors")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		limit, skip := parseLimitSkip(r)

		filter := types.SensorFilter{
			SiteID: r.URL.Query().Get("siteId"),
			Name:   r.URL.Query().Get("name"),
			Limit:  limit,
			Skip:   skip,
		}

		if v := r.URL.Query().Get("minSafe"); v != "" {
			min, err := strconv.ParseFloat(v, 64)
			if err == nil {
				filter.MinSafe = &min
			}
		}
		if v := r.URL.Query().Get("maxSafe"); v != "" {
			max, err := strconv.ParseFloat(v, 64)
			if err == nil {
				filter.MaxSafe = &max
			}
		}

		result, err := svc.Query(ctx, filter)
		if err != nil {
			requestLogger.Error("unable to query sensors", "err", err.Error())
			writeInternalError(w, err, production)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, result)
	}
}

func getSensorHandler(log *slog.Logger, svc sensors.SensorService, production bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := sensorTracer.Start(r.Context(), "get-sensor")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		sensorID := chi.URLParam(r, "sensorID")
		if sensorID != "" {
			requestLogger = requestLogger.With(slog.String("sensor_id", sensorID))
		}

		sensor, err := svc.GetByID(ctx, sensorID)
		if errors.Is(err, sensors.ErrSensorNotFound) {
			requestLogger.Debug("sensor not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch sensor", "err", err.Error())
			writeInternalError(w, err, production)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, sensor)
	}
}

func updateSensorHandler(log *slog.Logger, svc sensors.SensorService, production bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := sensorTracer.Start(r.Context(), "update-sensor")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		sensorID := chi.URLParam(r, "sensorID")
		if sensorID != "" {
			requestLogger = requestLogger.With(slog.String("sensor_id", sensorID))
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var sensor types.Sensor
		err = json.Unmarshal(body, &sensor)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}

		sensor.ID = sensorID

		err = svc.Update(ctx, sensor)
		if errors.Is(err, sensors.ErrSensorNotFound) {
			requestLogger.Debug("sensor not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to update sensor", "err", err.Error())
			writeInternalError(w, err, production)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func patchSensorHandler(log *slog.Logger, svc sensors.SensorService, production bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := sensorTracer.Start(r.Context(), "patch-sensor")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		sensorID := chi.URLParam(r, "sensorID")
		if sensorID != "" {
			requestLogger = requestLogger.With(slog.String("sensor_id", sensorID))
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

		sensor, err := svc.Merge(ctx, sensorID, fields)
		if errors.Is(err, sensors.ErrSensorNotFound) {
			requestLogger.Debug("sensor not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to patch sensor", "err", err.Error())
			writeInternalError(w, err, production)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, sensor)
	}
}

func deleteSensorHandler(log *slog.Logger, svc sensors.SensorService, production bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := sensorTracer.Start(r.Context(), "delete-sensor")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		sensorID := chi.URLParam(r, "sensorID")
		if sensorID != "" {
			requestLogger = requestLogger.With(slog.String("sensor_id", sensorID))
		}

		err = svc.Delete(ctx, sensorID)
		if errors.Is(err, sensors.ErrSensorNotFound) {
			requestLogger.Debug("sensor not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("unable to delete sensor", "err", err.Error())
			writeInternalError(w, err, production)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, map[string]bool{"deleted": true})
	}
}
