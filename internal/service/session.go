package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/omen/internal/apperror"
	"github.com/sakif/omen/internal/model"
	"github.com/sakif/omen/internal/storage"
)

// MockUser is the identity stored by SignIn. Authentication is local only.
var MockUser = model.User{
	ID:                "12345-mock",
	Name:              "Alex Riverstone",
	Email:             "alex.riverstone@example.com",
	PhotoURL:          "https://api.dicebear.com/8.x/lorelei/svg?seed=alex&backgroundColor=f0e7ff,c0a7e2",
	SpiritualPractice: model.PracticeNone,
}

// SessionService manages the signed-in user (storage.KeyUser) and the theme
// preference (storage.KeyTheme). Both keys are global.
//
// It holds no in-memory state: each call reads or writes the store, so
// separate CLI invocations always see the latest value.
type SessionService struct {
	codec  *storage.Codec
	logger *slog.Logger
}

func NewSessionService(codec *storage.Codec, logger *slog.Logger) *SessionService {
	return &SessionService{
		codec:  codec,
		logger: logger,
	}
}

// Current returns the signed-in user, or nil for a guest. An unreadable or
// malformed entry also means guest.
func (s *SessionService) Current(ctx context.Context) *model.User {
	user := storage.Load[*model.User](ctx, s.codec, storage.KeyUser, nil)
	if user != nil && user.ID == "" {
		s.logger.Warn("stored user has no id, treating as guest")
		return nil
	}
	return user
}

// SignIn stores MockUser as the signed-in user and returns it.
func (s *SessionService) SignIn(ctx context.Context) (*model.User, error) {
	user := MockUser
	if err := s.codec.Save(ctx, storage.KeyUser, user); err != nil {
		return nil, fmt.Errorf("signing in: %w", err)
	}

	s.logger.Info("user signed in", slog.String("user_id", user.ID))
	return &user, nil
}

// SignOut removes the stored user.
func (s *SessionService) SignOut(ctx context.Context) error {
	if err := s.codec.Remove(ctx, storage.KeyUser); err != nil {
		return fmt.Errorf("signing out: %w", err)
	}

	s.logger.Info("user signed out")
	return nil
}

// UpdateSpiritualPractice sets the signed-in user's practice. It returns the
// updated user, or nil without writing anything when nobody is signed in.
func (s *SessionService) UpdateSpiritualPractice(ctx context.Context, practice string) (*model.User, error) {
	p, ok := model.ParseSpiritualPractice(strings.TrimSpace(practice))
	if !ok {
		return nil, apperror.ValidationFailed("spiritualPractice",
			fmt.Sprintf("unknown spiritual practice %q", practice))
	}

	user := s.Current(ctx)
	if user == nil {
		return nil, nil
	}

	user.SpiritualPractice = p
	if err := s.codec.Save(ctx, storage.KeyUser, user); err != nil {
		return nil, fmt.Errorf("updating spiritual practice: %w", err)
	}
	return user, nil
}

// Theme returns the stored theme, or model.DefaultTheme when absent or invalid.
func (s *SessionService) Theme(ctx context.Context) model.Theme {
	text, ok := s.codec.LoadText(ctx, storage.KeyTheme)
	if !ok {
		return model.DefaultTheme
	}

	theme := model.Theme(text)
	if !theme.Valid() {
		s.logger.Warn("invalid stored theme", slog.String("theme", text))
		return model.DefaultTheme
	}
	return theme
}

// SetTheme validates and stores theme as plain text.
func (s *SessionService) SetTheme(ctx context.Context, theme model.Theme) error {
	if !theme.Valid() {
		return apperror.ValidationFailed("theme",
			fmt.Sprintf("theme must be one of light, dark, system; got %q", theme))
	}
	return s.codec.SaveText(ctx, storage.KeyTheme, string(theme))
}

// ToggleTheme switches light to dark and anything else to light.
func (s *SessionService) ToggleTheme(ctx context.Context) (model.Theme, error) {
	next := model.ThemeLight
	if s.Theme(ctx) == model.ThemeLight {
		next = model.ThemeDark
	}
	if err := s.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
