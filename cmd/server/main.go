// Package main is the entry point for the Omen backend.
//
// main stays minimal:
//  1. Read configuration (environment and .env)
//  2. Create dependencies (logger, model client, interpreter)
//  3. Start the server
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/sakif/omen/internal/config"
	"github.com/sakif/omen/internal/interpreter"
	"github.com/sakif/omen/internal/server"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	model, err := newModel(context.Background(), cfg)
	if err != nil {
		logger.Error("failed to create model client",
			slog.String("provider", cfg.Provider),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	if cfg.ImageTemplate == "" {
		logger.Warn("OMEN_IMAGE_URL_TEMPLATE not set, responses will carry imageUrl null")
	}

	interp := interpreter.New(model, cfg.ImageTemplate, logger)

	srv := server.New(server.Config{
		Port:            cfg.Port,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, interp, logger)

	logger.Info("model selected", slog.String("model", model.Name()))

	// Start() blocks until the server is shut down (via Ctrl+C or SIGTERM)
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newModel creates the client for the configured provider.
func newModel(ctx context.Context, cfg *config.Server) (interpreter.Model, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return interpreter.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		return interpreter.NewHuggingFace(cfg.HFAPIKey, cfg.HFModelURL, cfg.ModelTimeout), nil
	}
}
