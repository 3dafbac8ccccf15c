package main

import (
	"context"
	"net"
	"net/http"
	"os"

	"log/slog"

	"github.com/diwise/iot-facility-mgmt/internal/pkg/application/switches"
	"github.com/diwise/iot-facility-mgmt/internal/pkg/infrastructure/config"
	"github.com/diwise/iot-facility-mgmt/internal/pkg/infrastructure/router"
	"github.com/diwise/iot-facility-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-facility-mgmt/internal/pkg/presentation/grpcapi"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName string = "iot-switch-svc"

func main() {
	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion, "json")
	defer cleanup()

	s, err := newStorage(ctx)
	exitIf(err, logger, "could not connect to database")
	defer s.Close()

	err = s.Initialize(ctx)
	exitIf(err, logger, "could not initialize database")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")
	messenger.Start()
	defer messenger.Close()

	svc := switches.New(s, messenger)

	registry := prometheus.NewRegistry()
	metrics := grpcapi.NewRPCMetrics(registry)

	// metrics and health live on a separate control port, the service
	// port speaks grpc only
	go func() {
		r := router.New(serviceName)
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

		controlPort := config.GetVariableOrDefault(ctx, "CONTROL_PORT", "8000")
		err := http.ListenAndServe(":"+controlPort, r)
		exitIf(err, logger, "failed to start control endpoint")
	}()

	port := config.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080")
	listener, err := net.Listen("tcp", ":"+port)
	exitIf(err, logger, "failed to listen", "port", port)

	logger.Info("starting to listen for connections", "port", port)

	server := grpcapi.NewServer(svc, logger, metrics)
	err = server.Serve(listener)
	exitIf(err, logger, "failed to serve grpc")
}

func newStorage(ctx context.Context) (*storage.Storage, error) {
	cfg := storage.NewConfig(
		config.GetVariableOrDefault(ctx, "POSTGRES_HOST", ""),
		config.GetVariableOrDefault(ctx, "POSTGRES_USER", ""),
		config.GetVariableOrDefault(ctx, "POSTGRES_PASSWORD", ""),
		config.GetVariableOrDefault(ctx, "POSTGRES_PORT", "5432"),
		config.GetVariableOrDefault(ctx, "POSTGRES_DBNAME", "facility"),
		config.GetVariableOrDefault(ctx, "POSTGRES_SSLMODE", "disable"),
	)
	return storage.New(ctx, cfg)
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		os.Exit(1)
	}
}
