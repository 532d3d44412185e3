// Package main is the entry point for the operations dashboard API server.
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

	"github.com/joho/godotenv"

	"github.com/opsboard/backend/config"
	"github.com/opsboard/backend/internal/infra/dependency"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Operations Dashboard API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"upstream", cfg.Upstream.BaseURL,
	)

	// Wire dependencies
	injector := dependency.NewInjector(cfg)
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Pull the first snapshot so the dashboard has data straight away.
	// Failure is not fatal: the service starts empty and a later refresh
	// fills it in.
	if cfg.Upstream.RefreshOnStartup {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Upstream.Timeout*2)
		if output, err := injector.Refresh.Execute(ctx); err != nil {
			slog.Warn("Startup snapshot refresh failed, starting empty", "error", err)
		} else {
			slog.Info("Startup snapshot loaded", "version", output.Version, "exercise_id", output.ExerciseID)
		}
		cancel()
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
