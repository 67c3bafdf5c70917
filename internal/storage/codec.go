// Package storage is the codec between typed client state and the textual
// key-value store.
//
// Values are stored as JSON text. Reads never fail: an absent, empty or
// unparseable entry yields the caller's fallback, and parse problems are only
// logged. Writes overwrite unconditionally.
//
// KEY NAMESPACING:
// Per-user collections live under "<name>_<userID>", or "<name>_guest" when no
// user is signed in. Global keys (settings, theme, user) are not suffixed.
//
//	PartitionKey(KeyFavorites, nil)                 → "favorites_guest"
//	PartitionKey(KeyFavorites, &User{ID: "12345"})  → "favorites_12345"
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sakif/omen/internal/apperror"
	"github.com/sakif/omen/internal/model"
	"github.com/sakif/omen/internal/repository"
)

// Logical key names.
const (
	KeyPastOmens      = "pastOmens"
	KeyFavorites      = "favorites"
	KeyRecentSearches = "recentSearches"

	KeySettings = "omenSettings"
	KeyTheme    = "omenTheme"
	KeyUser     = "omenUser"
)

const guestSuffix = "_guest"

// PartitionSuffix returns "_"+user.ID, or "_guest" for a nil user.
func PartitionSuffix(user *model.User) string {
	if user == nil {
		return guestSuffix
	}
	return "_" + user.ID
}

// PartitionKey namespaces a logical key to the user's partition.
func PartitionKey(name string, user *model.User) string {
	return name + PartitionSuffix(user)
}

// Codec reads and writes JSON values through a KeyValueRepository.
type Codec struct {
	repo   repository.KeyValueRepository
	logger *slog.Logger
}

// NewCodec creates a Codec over repo.
func NewCodec(repo repository.KeyValueRepository, logger *slog.Logger) *Codec {
	return &Codec{
		repo:   repo,
		logger: logger,
	}
}

// Load reads key and decodes it into a T, returning fallback when the key is
// absent, empty, unreadable or not valid JSON for T.
//
// GENERIC FUNCTION, NOT METHOD:
// Go methods cannot declare their own type parameters, so Load takes the
// Codec as an argument:
//
//	omens := storage.Load(ctx, codec, "pastOmens_guest", []model.Omen{})
func Load[T any](ctx context.Context, c *Codec, key string, fallback T) T {
	text, ok := c.LoadText(ctx, key)
	if !ok || text == "" {
		return fallback
	}

	var value T
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		c.logger.Warn("failed to parse stored value",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return fallback
	}

	return value
}

// LoadText reads the raw text stored under key. ok is false when the key is
// absent or the store could not be read; read failures are logged.
func (c *Codec) LoadText(ctx context.Context, key string) (string, bool) {
	text, err := c.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			c.logger.Warn("failed to read stored value",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
		return "", false
	}
	return text, true
}

// Save encodes value as JSON and writes it under key.
func (c *Codec) Save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("storage: encoding %s: %w", key, err)
	}
	return c.SaveText(ctx, key, string(data))
}

// SaveText writes raw text under key.
func (c *Codec) SaveText(ctx context.Context, key, text string) error {
	if err := c.repo.Set(ctx, key, text); err != nil {
		return fmt.Errorf("storage: writing %s: %w", key, err)
	}
	return nil
}

// Remove deletes key entirely.
func (c *Codec) Remove(ctx context.Context, key string) error {
	if err := c.repo.Delete(ctx, key); err != nil {
		return fmt.Errorf("storage: removing %s: %w", key, err)
	}
	return nil
}
