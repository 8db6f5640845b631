package services

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
	"github.com/custodia-labs/folio-cli/internal/core/ports/driven"
	"github.com/custodia-labs/folio-cli/internal/core/ports/driving"
	"github.com/custodia-labs/folio-cli/internal/logger"
)

var _ driving.CatalogService = (*CatalogService)(nil)

//go:embed seed.toml
var seedTOML []byte

// CatalogService exposes catalog reads and persistence to the
// presentation layer.
type CatalogService struct {
	store       driven.CatalogStore
	persistence driven.CatalogPersistence
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store driven.CatalogStore, persistence driven.CatalogPersistence) *CatalogService {
	return &CatalogService{store: store, persistence: persistence}
}

// LoadOrInitialize fills the store from persistence, seeding a starter
// catalog on first run. Returns the number of entries loaded.
func (s *CatalogService) LoadOrInitialize(ctx context.Context) (int, error) {
	var entries []domain.Entry

	if s.persistence != nil {
		loaded, err := s.persistence.LoadEntries(ctx)
		if err != nil {
			return 0, fmt.Errorf("load catalog: %w", err)
		}
		entries = loaded
	}

	if len(entries) == 0 {
		seeded, err := seedEntries()
		if err != nil {
			return 0, fmt.Errorf("seed catalog: %w", err)
		}
		entries = seeded
		logger.Info("Empty catalog, seeding %d starter entries", len(entries))
	} else {
		logger.Debug("Loaded %d entries from persistence", len(entries))
	}

	if _, err := s.store.AppendAll(ctx, entries); err != nil {
		return 0, fmt.Errorf("populate catalog: %w", err)
	}
	return len(entries), nil
}

// seedEntries parses the embedded starter catalog.
func seedEntries() ([]domain.Entry, error) {
	var seed struct {
		Entries []domain.Entry `toml:"entries"`
	}
	if err := toml.Unmarshal(seedTOML, &seed); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}
	return seed.Entries, nil
}

// Statistics summarises the catalog.
func (s *CatalogService) Statistics(ctx context.Context) (*domain.Statistics, error) {
	return s.store.Statistics(ctx)
}

// Entries returns all entries in catalog order.
func (s *CatalogService) Entries(ctx context.Context) ([]domain.Entry, error) {
	return s.store.Snapshot(ctx)
}

// EntriesBy lists entries under key in the named index.
func (s *CatalogService) EntriesBy(ctx context.Context, index domain.IndexName, key string) ([]domain.Entry, error) {
	return s.store.EntriesBy(ctx, index, key)
}

// Keys lists the sorted keys of the named index.
func (s *CatalogService) Keys(ctx context.Context, index domain.IndexName) ([]string, error) {
	return s.store.Keys(ctx, index)
}

// Save persists the current catalog.
func (s *CatalogService) Save(ctx context.Context) error {
	if s.persistence == nil {
		return nil
	}
	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("snapshot catalog: %w", err)
	}
	if err := s.persistence.ReplaceEntries(ctx, snapshot); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	logger.Debug("Saved %d entries", len(snapshot))
	return nil
}
