package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"log/slog"

	"github.com/diwise/iot-facility-mgmt/internal/pkg/application/assets"
	"github.com/diwise/iot-facility-mgmt/internal/pkg/infrastructure/config"
	"github.com/diwise/iot-facility-mgmt/internal/pkg/infrastructure/router"
	"github.com/diwise/iot-facility-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-facility-mgmt/internal/pkg/presentation/amqpapi"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
)

const serviceName string = "iot-asset-svc"

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

	svc := assets.New(s, messenger)

	conn, err := amqp.Dial(brokerURL(ctx))
	exitIf(err, logger, "could not connect to broker")
	defer conn.Close()

	channel, err := conn.Channel()
	exitIf(err, logger, "could not open channel")
	defer channel.Close()

	responder := amqpapi.NewResponder(channel, svc, logger)
	err = responder.Start(ctx)
	exitIf(err, logger, "could not start responder")

	registry := prometheus.NewRegistry()

	r := router.New(serviceName)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	port := config.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080")
	logger.Info("starting to listen for connections", "port", port)

	err = http.ListenAndServe(":"+port, r)
	exitIf(err, logger, "failed to start request router")
}

func brokerURL(ctx context.Context) string {
	user := config.GetVariableOrDefault(ctx, "RABBITMQ_USER", "user")
	password := config.GetVariableOrDefault(ctx, "RABBITMQ_PASS", "bitnami")
	host := config.GetVariableOrDefault(ctx, "RABBITMQ_HOST", "localhost")
	port := config.GetVariableOrDefault(ctx, "RABBITMQ_PORT", "5672")

	return fmt.Sprintf("amqp://%s:%s@%s:%s/", user, password, host, port)
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
