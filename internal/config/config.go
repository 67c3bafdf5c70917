// Package config loads settings for both binaries from the environment.
//
// A .env file in the working directory is read first when present; real
// environment variables win over it. Every value has a default except the API
// key of the selected model provider.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Model providers.
const (
	ProviderHuggingFace = "huggingface"
	ProviderGemini      = "gemini"
)

// Server configures cmd/server.
type Server struct {
	Port     int
	LogLevel slog.Level

	Provider      string
	HFAPIKey      string
	HFModelURL    string
	GeminiAPIKey  string
	GeminiModel   string
	ModelTimeout  time.Duration
	ImageTemplate string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Client configures cmd/omen. Flags may override these after loading.
type Client struct {
	BackendURL     string
	DBPath         string
	RequestTimeout time.Duration
}

// LoadServer reads the server configuration. A missing API key for the
// selected provider is an error.
func LoadServer() (*Server, error) {
	_ = godotenv.Load()

	cfg := &Server{
		Port:            envInt("PORT", 8080),
		Provider:        strings.ToLower(envString("OMEN_MODEL_PROVIDER", ProviderHuggingFace)),
		HFAPIKey:        envString("HF_API_KEY", ""),
		HFModelURL:      envString("HF_MODEL_URL", "https://router.huggingface.co/mistralai/Mistral-7B-Instruct-v0.3"),
		GeminiAPIKey:    envString("GEMINI_API_KEY", ""),
		GeminiModel:     envString("GEMINI_MODEL", "gemini-2.5-flash"),
		ModelTimeout:    envDuration("MODEL_TIMEOUT", 60*time.Second),
		ImageTemplate:   envString("OMEN_IMAGE_URL_TEMPLATE", ""),
		ReadTimeout:     envDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    envDuration("HTTP_WRITE_TIMEOUT", 90*time.Second),
		ShutdownTimeout: envDuration("HTTP_SHUTDOWN_TIMEOUT", 30*time.Second),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(envString("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("config: invalid LOG_LEVEL: %w", err)
	}

	switch cfg.Provider {
	case ProviderHuggingFace:
		if cfg.HFAPIKey == "" {
			return nil, errors.New("config: missing HuggingFace API key (HF_API_KEY)")
		}
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, errors.New("config: missing Gemini API key (GEMINI_API_KEY)")
		}
	default:
		return nil, fmt.Errorf("config: unknown OMEN_MODEL_PROVIDER %q (want %s or %s)",
			cfg.Provider, ProviderHuggingFace, ProviderGemini)
	}

	return cfg, nil
}

// LoadClient reads the client configuration.
func LoadClient() *Client {
	_ = godotenv.Load()

	return &Client{
		BackendURL:     envString("OMEN_BACKEND_URL", "http://localhost:8080/api/omen"),
		DBPath:         envString("OMEN_DB_PATH", defaultDBPath()),
		RequestTimeout: envDuration("OMEN_REQUEST_TIMEOUT", 120*time.Second),
	}
}

// defaultDBPath is $HOME/.omen/omen.db, or ./omen.db without a home directory.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "omen.db"
	}
	return filepath.Join(home, ".omen", "omen.db")
}
