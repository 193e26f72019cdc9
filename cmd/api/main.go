// Package main is the entrypoint for the Devfolio API server.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/devfolio/devfolio/internal/auth"
	"github.com/devfolio/devfolio/internal/config"
	"github.com/devfolio/devfolio/internal/metrics"
	"github.com/devfolio/devfolio/internal/server"
	"github.com/devfolio/devfolio/internal/storage"
)

func main() {
	// Load .env if present; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	if cfg.UsesDefaultAdminKey() {
		logger.Warn("ADMIN_API_KEY is unset; admin routes are gated by the default key",
			"hint", "set ADMIN_API_KEY before exposing this server",
		)
	}

	// The store is constructed once and injected; all state is
	// process-lifetime only and reseeds on restart.
	store := storage.New()
	logger.Info("store initialized", "seed_projects", storage.SeedProjectCount)

	recorder := metrics.NewInMemory()

	router := server.NewRouter(server.RouterConfig{
		Store:              store,
		Verifier:           auth.NewStaticKeyVerifier(cfg.AdminAPIKey),
		Logger:             logger,
		Metrics:            recorder,
		Snapshotter:        recorder,
		CORSAllowedOrigins: cfg.GetCORSAllowedOrigins(),
		MaxRequestBodySize: cfg.MaxRequestBodySize,
	})

	srv := server.New(
		router,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
