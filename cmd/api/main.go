package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"simusmart/internal/config"
	"simusmart/internal/editor"
	"simusmart/internal/handler"
	"simusmart/internal/repository"
	"simusmart/internal/router"
	"simusmart/internal/seed"
	"simusmart/internal/service"

	"go.opentelemetry.io/otel"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting simusmart API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize tracing
	tracerProvider, err := config.NewTracerProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	otel.SetTracerProvider(tracerProvider)
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := tracerProvider.Shutdown(flushCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown tracer provider")
		}
	}()
	logger.Info().Str("exporter", cfg.Tracing.Exporter).Msg("tracing initialised")

	// Load the seed dataset
	dataset, err := seed.NewFileLoader(logger).Load(ctx, cfg.Seed.File)
	if err != nil {
		return fmt.Errorf("failed to load seed data: %w", err)
	}

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository(dataset.Categories, dataset.Products, logger)
	orderRepo := repository.NewOrderRepository(dataset.Orders, logger)
	reviewRepo := repository.NewReviewRepository(dataset.Reviews, logger)
	settingsRepo, err := repository.NewSettingsRepository(dataset.Settings, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize settings: %w", err)
	}
	sessionRepo := repository.NewSessionRepository(logger)
	cartRepo := repository.NewCartRepository(logger)

	// Initialize services
	authenticator := service.NewStubAuthenticator(cfg.Auth.StubUserName, cfg.Auth.StubUserEmail)
	catalogService := service.NewCatalogService(catalogRepo, logger)
	orderService := service.NewOrderService(orderRepo, catalogRepo, logger)
	reviewService := service.NewReviewService(reviewRepo, logger)
	settingsService := service.NewSettingsService(settingsRepo, logger)
	sessionService := service.NewSessionService(sessionRepo, authenticator, cfg.Auth.AdminEmailPrefix, logger)
	cartService := service.NewCartService(cartRepo, catalogRepo, logger)
	forms := editor.NewDispatcher(catalogService, settingsService, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Catalog:  handler.NewCatalogHandler(catalogService, logger),
		Orders:   handler.NewOrderHandler(orderService, logger),
		Reviews:  handler.NewReviewHandler(reviewService, logger),
		Settings: handler.NewSettingsHandler(settingsService, logger),
		Session:  handler.NewSessionHandler(sessionService, logger),
		Cart:     handler.NewCartHandler(cartService, logger),
		Forms:    handler.NewFormHandler(forms, logger),
	}

	// Initialize router
	mux := router.New(handlers, router.Options{
		IsAdmin: func(ctx context.Context) bool {
			return sessionService.Snapshot(ctx).IsAdmin
		},
		TracerProvider: tracerProvider,
	}, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		// Flush spans of the drained requests
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to flush traces")
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
