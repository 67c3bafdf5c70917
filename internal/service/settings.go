package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/sakif/omen/internal/model"
	"github.com/sakif/omen/internal/storage"
)

// SettingsService owns the global display preferences stored under
// storage.KeySettings.
type SettingsService struct {
	codec  *storage.Codec
	logger *slog.Logger

	mu       sync.RWMutex
	settings model.AppSettings
}

// NewSettingsService creates a SettingsService holding the defaults.
// Call Load to read the persisted value.
func NewSettingsService(codec *storage.Codec, logger *slog.Logger) *SettingsService {
	return &SettingsService{
		codec:    codec,
		logger:   logger,
		settings: model.DefaultSettings(),
	}
}

// Load reads the stored settings. Each flag is read on its own and is true
// when missing or not a boolean; an absent or malformed entry yields
// model.DefaultSettings.
func (s *SettingsService) Load(ctx context.Context) model.AppSettings {
	stored := storage.Load(ctx, s.codec, storage.KeySettings, map[string]json.RawMessage{})

	settings := model.DefaultSettings()
	settings.ShowCultural = flagOr(stored["showCultural"], settings.ShowCultural)
	settings.ShowPsychological = flagOr(stored["showPsychological"], settings.ShowPsychological)

	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()

	return settings
}

// Settings returns the current in-memory settings.
func (s *SettingsService) Settings() model.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Set replaces the settings and writes them.
func (s *SettingsService) Set(ctx context.Context, settings model.AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = settings
	if err := s.codec.Save(ctx, storage.KeySettings, settings); err != nil {
		return err
	}

	s.logger.Debug("settings saved",
		slog.Bool("show_cultural", settings.ShowCultural),
		slog.Bool("show_psychological", settings.ShowPsychological),
	)
	return nil
}

// flagOr decodes a stored boolean, or returns def when raw is missing, null
// or not a boolean.
func flagOr(raw json.RawMessage, def bool) bool {
	var b *bool
	if err := json.Unmarshal(raw, &b); err != nil || b == nil {
		return def
	}
	return *b
}
