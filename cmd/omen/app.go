package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sakif/omen/internal/config"
	"github.com/sakif/omen/internal/model"
	"github.com/sakif/omen/internal/proxy"
	sqliteRepo "github.com/sakif/omen/internal/repository/sqlite"
	"github.com/sakif/omen/internal/service"
	"github.com/sakif/omen/internal/storage"
)

// compile-time check that the proxy client satisfies the search service
var _ service.SymbolFetcher = (*proxy.Client)(nil)

// app is the composition root of one CLI invocation.
type app struct {
	db       *sqliteRepo.DB
	session  *service.SessionService
	omens    *service.OmenService
	settings *service.SettingsService
	search   *service.SearchService

	user *model.User
}

// openApp wires storage, services and the proxy client, then loads the
// collections of the signed-in user (or the guest partition).
func openApp(ctx context.Context) (*app, error) {
	cfg := config.LoadClient()
	if backendURL != "" {
		cfg.BackendURL = backendURL
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory %s: %w", dir, err)
		}
	}

	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening local store: %w", err)
	}

	codec := storage.NewCodec(db, logger)
	client := proxy.NewClient(cfg.BackendURL, cfg.RequestTimeout, logger)

	a := &app{
		db:       db,
		session:  service.NewSessionService(codec, logger),
		omens:    service.NewOmenService(codec, logger),
		settings: service.NewSettingsService(codec, logger),
	}
	a.search = service.NewSearchService(client, a.omens, logger, nil)

	a.user = a.session.Current(ctx)
	a.omens.Load(ctx, a.user)
	a.settings.Load(ctx)

	return a, nil
}

// switchUser reloads the collections after sign-in or sign-out.
func (a *app) switchUser(ctx context.Context, user *model.User) {
	a.user = user
	a.omens.Load(ctx, user)
}

func (a *app) Close() error {
	return a.db.Close()
}

// withApp opens the app for the duration of fn.
func withApp(ctx context.Context, fn func(a *app) error) error {
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
