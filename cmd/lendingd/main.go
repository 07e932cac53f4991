package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/creditosur/lending-engine/internal/application/usecase"
	"github.com/creditosur/lending-engine/internal/domain/port"
	"github.com/creditosur/lending-engine/internal/domain/service"
	"github.com/creditosur/lending-engine/internal/infrastructure/cache"
	"github.com/creditosur/lending-engine/internal/infrastructure/config"
	"github.com/creditosur/lending-engine/internal/infrastructure/kafka"
	pgRepo "github.com/creditosur/lending-engine/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/creditosur/lending-engine/internal/presentation/grpc"
	"github.com/creditosur/lending-engine/internal/presentation/rest"
	"github.com/creditosur/lending-engine/pkg/auth"
	pkgkafka "github.com/creditosur/lending-engine/pkg/kafka"
	"github.com/creditosur/lending-engine/pkg/observability"
	pkgpostgres "github.com/creditosur/lending-engine/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "json"),
	})
	slog.SetDefault(logger)

	logger.Info("starting lending-engine",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize tracing.
	shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.ServiceName,
		Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() { _ = shutdown(ctx) }() //nolint:errcheck // best-effort tracer shutdown
	}

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without metrics", "error", err)
	} else {
		defer func() { _ = meterProvider.Shutdown(ctx) }() //nolint:errcheck // best-effort shutdown
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(dbCfg.DSN(), "file://internal/infrastructure/persistence/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	clientRepo := pgRepo.NewClientRepo(pool)
	loanRepo := pgRepo.NewLoanRepo(pool)

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := kafka.NewEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	// Preview cache is optional: without Redis every preview is computed
	// directly, which is still cheap.
	var previewCache port.PreviewCache
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisPreviewCache(cfg.Redis.Addr, 15*time.Minute)
		defer redisCache.Close()
		previewCache = redisCache
		logger.Info("preview cache enabled", "addr", cfg.Redis.Addr)
	}

	scorer := service.NewRiskScorer()

	// Wire use cases.
	previewUC := usecase.NewPreviewScheduleUseCase(previewCache, logger)
	registerClientUC := usecase.NewRegisterClientUseCase(clientRepo)
	scoreClientUC := usecase.NewScoreClientUseCase(clientRepo, publisher, scorer)
	createLoanUC := usecase.NewCreateLoanUseCase(clientRepo, loanRepo, publisher)
	getLoanUC := usecase.NewGetLoanUseCase(loanRepo)
	getClientUC := usecase.NewGetClientUseCase(clientRepo)
	paymentUC := usecase.NewRegisterPaymentUseCase(loanRepo, clientRepo, publisher)

	// JWT service (validation-only: public key preferred, secret as fallback).
	jwtCfg := auth.JWTConfig{
		Issuer: getEnv("JWT_ISSUER", "creditosur-gateway"),
	}
	switch {
	case os.Getenv("JWT_PUBLIC_KEY") != "":
		jwtCfg.PublicKeyPEM = os.Getenv("JWT_PUBLIC_KEY")
	case os.Getenv("JWT_PUBLIC_KEY_FILE") != "":
		keyData, loadErr := auth.LoadKeyFromFile(os.Getenv("JWT_PUBLIC_KEY_FILE"))
		if loadErr != nil {
			logger.Error("failed to load JWT public key file", "error", loadErr)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	default:
		jwtSecret := os.Getenv("JWT_SECRET")
		if jwtSecret == "" {
			jwtSecret = "dev-only-secret" // local development fallback
		}
		jwtCfg.Secret = jwtSecret
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewLendingHandler(
		previewUC, registerClientUC, scoreClientUC,
		createLoanUC, getLoanUC, getClientUC, paymentUC,
		logger,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtSvc)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(pool, logger)
	healthHandler.RegisterRoutes(mux)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("lending-engine stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
