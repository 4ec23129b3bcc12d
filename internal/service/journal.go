package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tijaniyah/companion/internal/data"
	"github.com/tijaniyah/companion/internal/domain/model"
	"github.com/tijaniyah/companion/internal/ports"
)

// JournalServiceOptions groups dependencies for JournalService.
type JournalServiceOptions struct {
	API    ports.JournalAPI
	Cache  *data.JSONRepo
	Logger *slog.Logger
}

// JournalService reads and writes journal entries through the backend and keeps the last
// known list in the local cache for offline reads.
type JournalService struct {
	api    ports.JournalAPI
	cache  *data.JSONRepo
	logger *slog.Logger
}

// JournalList is the result of JournalService.List. Cached is set when the backend could
// not be reached and the entries came from the local cache.
type JournalList struct {
	Entries []model.JournalEntry
	Cached  bool
}

// NewJournalService constructs a JournalService.
func NewJournalService(opts JournalServiceOptions) (*JournalService, error) {
	if opts.API == nil {
		return nil, errors.New("journal service: API is required")
	}
	if opts.Cache == nil {
		return nil, errors.New("journal service: Cache is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &JournalService{api: opts.API, cache: opts.Cache, logger: logger.With("component", "journal")}, nil
}

// List fetches the entries and refreshes the cache. When the fetch fails the cached entries
// are served instead; without a cache the fetch error is returned.
func (s *JournalService) List(ctx context.Context) (JournalList, error) {
	entries, err := s.api.ListJournal(ctx)
	if err == nil {
		s.store(ctx, entries)
		return JournalList{Entries: entries}, nil
	}

	cached, ok := s.cached(ctx)
	if !ok {
		return JournalList{}, err
	}
	s.logger.WarnContext(ctx, "serving cached journal entries", "error", err, "count", len(cached))
	return JournalList{Entries: cached, Cached: true}, nil
}

// Create adds an entry and prepends it to the cache.
func (s *JournalService) Create(ctx context.Context, req model.CreateJournalEntryRequest) (model.JournalEntry, error) {
	entry, err := s.api.CreateJournalEntry(ctx, req)
	if err != nil {
		return model.JournalEntry{}, err
	}
	cached, _ := s.cached(ctx)
	s.store(ctx, append([]model.JournalEntry{entry}, cached...))
	return entry, nil
}

// Update changes an entry and replaces it in the cache.
func (s *JournalService) Update(ctx context.Context, id string, req model.UpdateJournalEntryRequest) (model.JournalEntry, error) {
	entry, err := s.api.UpdateJournalEntry(ctx, id, req)
	if err != nil {
		return model.JournalEntry{}, err
	}
	cached, _ := s.cached(ctx)
	for i := range cached {
		if cached[i].ID == id {
			cached[i] = entry
		}
	}
	s.store(ctx, cached)
	return entry, nil
}

// Delete removes an entry remotely and from the cache.
func (s *JournalService) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteJournalEntry(ctx, id); err != nil {
		return err
	}
	cached, _ := s.cached(ctx)
	kept := cached[:0]
	for _, e := range cached {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.store(ctx, kept)
	return nil
}

func (s *JournalService) cached(ctx context.Context) ([]model.JournalEntry, bool) {
	var entries []model.JournalEntry
	ok, err := s.cache.Get(ctx, ports.KeyJournalEntries, &entries)
	if err != nil {
		s.logger.WarnContext(ctx, "read journal cache", "error", err)
		return nil, false
	}
	return entries, ok
}

func (s *JournalService) store(ctx context.Context, entries []model.JournalEntry) {
	if entries == nil {
		entries = []model.JournalEntry{}
	}
	if err := s.cache.Put(ctx, ports.KeyJournalEntries, entries); err != nil {
		s.logger.WarnContext(ctx, "write journal cache", "error", err)
	}
}
