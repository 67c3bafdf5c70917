// Package service contains the business logic layer of the client.
//
// THE LAYERS:
//
//	cmd/omen (CLI)            → parses flags and arguments, prints results
//	Service (business layer)  → dedup, caps, toggles, validation, orchestration
//	storage.Codec             → typed JSON values over a key-value store
//	Repository (data layer)   → reads/writes text rows in SQLite
//
// Services take their collaborators as interfaces or small structs injected by
// the caller, so tests can run them against an in-memory store without a
// terminal or a network.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/sakif/omen/internal/apperror"
	"github.com/sakif/omen/internal/model"
	"github.com/sakif/omen/internal/storage"
)

// Collection limits.
const (
	MaxPastOmens      = 20
	MaxRecentSearches = 10
)

// Collection names one of the three per-user collections.
type Collection string

const (
	CollectionPastOmens      Collection = "history"
	CollectionFavorites      Collection = "favorites"
	CollectionRecentSearches Collection = "recent"
)

// storageKey maps a collection to its logical storage key.
func (c Collection) storageKey() (string, bool) {
	switch c {
	case CollectionPastOmens:
		return storage.KeyPastOmens, true
	case CollectionFavorites:
		return storage.KeyFavorites, true
	case CollectionRecentSearches:
		return storage.KeyRecentSearches, true
	}
	return "", false
}

// OmenService holds the in-memory past omens, favorites and recent searches of
// the active partition.
//
// PERSISTENCE MODEL:
// Every mutation computes the full next collection and writes it back with a
// single Save. There are no deltas and no batching, so the stored value always
// equals the in-memory value after a successful call.
//
// The mutex serialises mutations. A mutation reads the current slice, builds
// a new one and persists it without any other mutation interleaving.
type OmenService struct {
	codec  *storage.Codec
	logger *slog.Logger

	mu             sync.RWMutex
	user           *model.User
	pastOmens      []model.Omen
	favorites      []model.Omen
	recentSearches []string
}

// NewOmenService creates an OmenService with empty guest collections.
// Call Load to read the persisted state of a partition.
func NewOmenService(codec *storage.Codec, logger *slog.Logger) *OmenService {
	return &OmenService{
		codec:          codec,
		logger:         logger,
		pastOmens:      []model.Omen{},
		favorites:      []model.Omen{},
		recentSearches: []string{},
	}
}

// Load switches the active partition to user (nil for guest) and reloads all
// three collections from their suffixed keys. Nothing is migrated or merged
// between partitions.
func (s *OmenService) Load(ctx context.Context, user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user
	s.pastOmens = orEmpty(storage.Load(ctx, s.codec, storage.PartitionKey(storage.KeyPastOmens, user), []model.Omen{}))
	s.favorites = orEmpty(storage.Load(ctx, s.codec, storage.PartitionKey(storage.KeyFavorites, user), []model.Omen{}))
	s.recentSearches = orEmpty(storage.Load(ctx, s.codec, storage.PartitionKey(storage.KeyRecentSearches, user), []string{}))

	s.logger.Debug("collections loaded",
		slog.String("partition", storage.PartitionSuffix(user)),
		slog.Int("past_omens", len(s.pastOmens)),
		slog.Int("favorites", len(s.favorites)),
		slog.Int("recent_searches", len(s.recentSearches)),
	)
}

// AddPastOmen records omen as the newest history entry. Any entry with the
// same name (ignoring case) is dropped first, and the list is capped at
// MaxPastOmens.
func (s *OmenService) AddPastOmen(ctx context.Context, omen model.Omen) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Omen, 0, len(s.pastOmens)+1)
	next = append(next, omen)
	for _, o := range s.pastOmens {
		if !model.SameName(o.Name, omen.Name) {
			next = append(next, o)
		}
	}
	if len(next) > MaxPastOmens {
		next = next[:MaxPastOmens]
	}

	s.pastOmens = next
	return s.codec.Save(ctx, s.key(storage.KeyPastOmens), next)
}

// ToggleFavorite removes omen from the favorites if an entry with exactly the
// same name exists, otherwise prepends it. It reports whether omen is a
// favorite afterwards.
//
// Matching here is case-sensitive, unlike the history dedup.
func (s *OmenService) ToggleFavorite(ctx context.Context, omen model.Omen) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Omen, 0, len(s.favorites)+1)
	removed := false
	for _, o := range s.favorites {
		if o.Name == omen.Name {
			removed = true
			continue
		}
		next = append(next, o)
	}
	if !removed {
		next = append([]model.Omen{omen}, next...)
	}

	s.favorites = next
	return !removed, s.codec.Save(ctx, s.key(storage.KeyFavorites), next)
}

// AddRecentSearch records text as the newest recent search. Blank input is
// ignored and nothing is written.
func (s *OmenService) AddRecentSearch(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]string, 0, len(s.recentSearches)+1)
	next = append(next, text)
	for _, q := range s.recentSearches {
		if !model.SameName(q, text) {
			next = append(next, q)
		}
	}
	if len(next) > MaxRecentSearches {
		next = next[:MaxRecentSearches]
	}

	s.recentSearches = next
	return s.codec.Save(ctx, s.key(storage.KeyRecentSearches), next)
}

// Clear empties one collection and deletes its stored key entirely.
func (s *OmenService) Clear(ctx context.Context, c Collection) error {
	name, ok := c.storageKey()
	if !ok {
		return apperror.ValidationFailed("collection", fmt.Sprintf("unknown collection %q", c))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch c {
	case CollectionPastOmens:
		s.pastOmens = []model.Omen{}
	case CollectionFavorites:
		s.favorites = []model.Omen{}
	case CollectionRecentSearches:
		s.recentSearches = []string{}
	}

	return s.codec.Remove(ctx, s.key(name))
}

// PastOmens returns a copy of the history, newest first.
func (s *OmenService) PastOmens() []model.Omen {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Omen{}, s.pastOmens...)
}

// Favorites returns a copy of the favorites, newest first.
func (s *OmenService) Favorites() []model.Omen {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Omen{}, s.favorites...)
}

// RecentSearches returns a copy of the recent searches, newest first.
func (s *OmenService) RecentSearches() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.recentSearches...)
}

// Find looks name up in the history, then in the favorites, ignoring case.
func (s *OmenService) Find(name string) (model.Omen, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, list := range [][]model.Omen{s.pastOmens, s.favorites} {
		for _, o := range list {
			if model.SameName(o.Name, name) {
				return o, nil
			}
		}
	}
	return model.Omen{}, apperror.NotFound("omen", name)
}

// IsFavorite reports whether a favorite named exactly name exists.
func (s *OmenService) IsFavorite(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.favorites {
		if o.Name == name {
			return true
		}
	}
	return false
}

// key returns the partitioned key for the active user. Callers hold mu.
func (s *OmenService) key(name string) string {
	return storage.PartitionKey(name, s.user)
}

// orEmpty turns a nil slice (stored JSON null) into an empty one.
func orEmpty[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
