package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wavecrest/lead-intake/internal/api/router"
	appconfig "github.com/wavecrest/lead-intake/internal/config"
	"github.com/wavecrest/lead-intake/internal/leads"
	"github.com/wavecrest/lead-intake/internal/notify"
	"github.com/wavecrest/lead-intake/internal/observability/metrics"
	"github.com/wavecrest/lead-intake/pkg/logging"
)

func main() {
	// Load .env when present, then configuration
	_ = godotenv.Load()
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting lead-intake API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		cancel()
		logger.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	if err := pool.Ping(ctx); err != nil {
		cancel()
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	cancel()
	defer pool.Close()

	// Initialize repository, metrics, and notification path
	repo := leads.NewPostgresRepository(pool)
	intakeMetrics := metrics.NewIntakeMetrics(nil)

	var notifier leads.Notifier
	sender := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.NotifyFromEmail,
		FromName:  cfg.NotifyFromName,
	}, logger)
	if sender != nil {
		if alerter := notify.NewLeadAlerter(sender, cfg.NotifyToEmail, intakeMetrics, logger); alerter != nil {
			notifier = alerter
		}
	}
	if notifier == nil {
		logger.Warn("lead notifications disabled: SendGrid key, sender, or destination not configured")
	}

	// Initialize handler and router
	leadsHandler := leads.NewHandler(repo, notifier, intakeMetrics, logger)
	r := router.New(&router.Config{
		Logger:             logger,
		LeadsHandler:       leadsHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		SubmitRateLimit:    cfg.SubmitRateLimit,
		SubmitRateBurst:    cfg.SubmitRateBurst,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
