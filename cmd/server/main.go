// Package main is the entry point for the fare aggregation service.
//
//	@title						Fare Aggregation API
//	@version					1.0.0
//	@description				A multi-destination one-way fare aggregation service that fans out over a destination catalog and returns the cheapest fare per destination, ranked by price.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/farescout/fare-aggregation-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/farescout/fare-aggregation-service/docs"

	// Application layers
	farehttp "github.com/farescout/fare-aggregation-service/internal/adapter/http"
	"github.com/farescout/fare-aggregation-service/internal/adapter/http/middleware"
	"github.com/farescout/fare-aggregation-service/internal/adapter/provider/ryanair"
	"github.com/farescout/fare-aggregation-service/internal/config"
	"github.com/farescout/fare-aggregation-service/internal/domain"
	"github.com/farescout/fare-aggregation-service/internal/infrastructure/logger"
	"github.com/farescout/fare-aggregation-service/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "fare-aggregator",
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("origin", cfg.Aggregation.Origin).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware: request ID, request logging, panic recovery
	middleware.Setup(e, log.Logger)

	// Setup routes
	setupRoutes(e, cfg, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupRoutes wires the fare source, the aggregation engine, and the
// HTTP handlers.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	source := ryanair.NewAdapter(ryanair.Config{
		BaseURL:         cfg.Upstream.BaseURL,
		Timeout:         cfg.Upstream.Timeout,
		ResultLimit:     cfg.Upstream.ResultLimit,
		MaxPrecallDelay: cfg.Upstream.MaxPrecallDelay,
	}, log)

	engineConfig := &usecase.Config{
		BatchSize:      cfg.Aggregation.BatchSize,
		BatchPause:     cfg.Aggregation.BatchPause,
		MaxAttempts:    cfg.Retry.MaxAttempts,
		InitialDelay:   cfg.Retry.InitialDelay,
		MaxDelay:       cfg.Retry.MaxDelay,
		Multiplier:     cfg.Retry.Multiplier,
		JitterFactor:   cfg.Retry.JitterFactor,
		RateLimitFloor: cfg.Retry.RateLimitFloor,
	}
	catalog := domain.DefaultCatalog()
	aggregator := usecase.NewFareAggregator(source, catalog, engineConfig, log)

	handler := farehttp.NewFareHandler(aggregator, catalog, cfg.Aggregation.ResultLimit)
	farehttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
