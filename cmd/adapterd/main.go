package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bibbank/message-adapter/internal/application/usecase"
	"github.com/bibbank/message-adapter/internal/auth"
	"github.com/bibbank/message-adapter/internal/domain/service"
	"github.com/bibbank/message-adapter/internal/infrastructure/config"
	kafkapkg "github.com/bibbank/message-adapter/internal/infrastructure/kafka"
	"github.com/bibbank/message-adapter/internal/infrastructure/messaging"
	pgpkg "github.com/bibbank/message-adapter/internal/infrastructure/postgres"
	"github.com/bibbank/message-adapter/internal/observability"
	grpcPresentation "github.com/bibbank/message-adapter/internal/presentation/grpc"
	"github.com/bibbank/message-adapter/internal/presentation/rest"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()
	cfg.Validate()

	// Initialize logger.
	logger := observability.InitLogger(observability.LogConfig{
		Service: cfg.Telemetry.ServiceName,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	logger.Info("starting message-adapter",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics()
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer meterProvider.Shutdown(context.Background())

	adapterMetrics, err := observability.NewAdapterMetrics(meterProvider)
	if err != nil {
		logger.Error("failed to register metrics", "error", err)
		os.Exit(1)
	}

	// Initialize database.
	pool, err := pgpkg.NewPool(ctx, cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations.
	if err := pgpkg.MigrateUp(cfg.DB.DSN(), "file://./migrations"); err != nil {
		logger.Warn("migration warning", "error", err)
	}

	// Initialize Kafka producer.
	producer := kafkapkg.NewProducer(kafkapkg.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer producer.Close()

	// JWT validation.
	jwtCfg := auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
	}
	if cfg.JWT.PublicKeyFile != "" {
		keyPEM, err := auth.LoadKeyFromFile(cfg.JWT.PublicKeyFile)
		if err != nil {
			logger.Error("failed to load JWT public key", "error", err)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(keyPEM)
	}
	jwtService, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// Wire dependencies (DI via constructors).
	adapter := service.NewMessageAdapter(logger)
	policy := service.NewAcceptancePolicy(adapter)
	archive := pgpkg.NewMessageArchiveRepo(pool)
	publisher := messaging.NewPublisher(producer)
	ledger := messaging.NewKafkaLedgerGateway(producer)

	// Use cases.
	processUC := usecase.NewProcessInboundMessage(adapter, policy, archive, ledger, publisher, adapterMetrics, logger)
	getUC := usecase.NewGetMessage(archive)
	listUC := usecase.NewListMessages(archive)

	// gRPC server.
	handler := grpcPresentation.NewMessageHandler(processUC, getUC, listUC, logger)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtService, grpcPresentation.TLSOptions{
		Enabled:  cfg.TLS.Enabled,
		CertFile: cfg.TLS.CertFile,
		KeyFile:  cfg.TLS.KeyFile,
	})

	// HTTP server (health checks + metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(pool, logger)
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: mux,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		errCh <- grpcServer.Serve(fmt.Sprintf(":%d", cfg.GRPCPort))
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for shutdown.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	httpServer.Shutdown(context.Background()) //nolint:errcheck
	grpcServer.GracefulStop()
	slog.Info("message-adapter stopped")
}
