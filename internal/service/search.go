package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sakif/omen/internal/apperror"
	"github.com/sakif/omen/internal/model"
)

// SymbolFetcher fetches the interpretation of one query from the backend.
// proxy.Client implements it.
type SymbolFetcher interface {
	Fetch(ctx context.Context, query string, location *model.Geolocation, practice model.SpiritualPractice) (*model.SymbolResult, error)
}

// Session is the context of one user action: who is signed in and where they
// are. It is passed explicitly to every call that needs it.
type Session struct {
	User     *model.User        // nil for a guest
	Location *model.Geolocation // nil when unknown
}

// SearchService runs the search action: fetch an interpretation, then record
// it in the recent searches and the history.
type SearchService struct {
	fetcher SymbolFetcher
	omens   *OmenService
	logger  *slog.Logger
	now     func() time.Time
}

// NewSearchService creates a SearchService. now is used for omen timestamps;
// nil means time.Now.
func NewSearchService(fetcher SymbolFetcher, omens *OmenService, logger *slog.Logger, now func() time.Time) *SearchService {
	if now == nil {
		now = time.Now
	}
	return &SearchService{
		fetcher: fetcher,
		omens:   omens,
		logger:  logger,
		now:     now,
	}
}

// Search interprets query for session.
//
// A blank query fails validation before any network activity. When the fetch
// fails its error is returned unchanged and no collection is touched. On
// success the query goes to the recent searches and the new omen to the
// history, in that order. Both writes are attempted even if the first fails;
// any write error is returned together with the omen, which is already
// recorded in memory.
func (s *SearchService) Search(ctx context.Context, session Session, query string) (*model.Omen, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperror.ValidationFailed("query", "Please enter a symbol or omen to search for.")
	}

	result, err := s.fetcher.Fetch(ctx, query, session.Location, session.User.Practice())
	if err != nil {
		s.logger.Warn("search failed",
			slog.String("query", query),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	omen := model.Omen{
		SymbolInfo: result.Info,
		ImageURL:   result.ImageURL,
		Query:      query,
		Timestamp:  s.now().UnixMilli(),
	}

	var errs []error
	if err := s.omens.AddRecentSearch(ctx, query); err != nil {
		errs = append(errs, fmt.Errorf("saving recent search: %w", err))
	}
	if err := s.omens.AddPastOmen(ctx, omen); err != nil {
		errs = append(errs, fmt.Errorf("saving past omen: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		s.logger.Error("search result not fully saved",
			slog.String("query", query),
			slog.String("error", err.Error()),
		)
		return &omen, err
	}

	s.logger.Info("omen interpreted",
		slog.String("query", query),
		slog.String("name", omen.Name),
	)
	return &omen, nil
}
