// Package memory provides the in-memory catalog store: an append-only
// arena of entries plus the derived author/theme/period indices, kept
// consistent under a single read-write lock.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
	"github.com/custodia-labs/folio-cli/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

// CatalogStore is an in-memory implementation of driven.CatalogStore.
// Positions are arena indices: stable for the process lifetime, never
// reused. The indices are derived data, updated incrementally on every
// append and never rebuilt in the hot path.
type CatalogStore struct {
	mu      sync.RWMutex
	entries []domain.Entry
	indices map[domain.IndexName]map[string][]int
}

// NewCatalogStore creates an empty catalog store.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		indices: map[domain.IndexName]map[string][]int{
			domain.IndexAuthor: {},
			domain.IndexTheme:  {},
			domain.IndexPeriod: {},
		},
	}
}

// NewCatalogStoreFrom builds a store from persisted entries, rebuilding
// the indices deterministically in position order.
func NewCatalogStoreFrom(entries []domain.Entry) *CatalogStore {
	s := NewCatalogStore()
	for _, e := range entries {
		s.appendLocked(e)
	}
	return s
}

// Append inserts one entry and updates all indices atomically.
func (s *CatalogStore) Append(_ context.Context, entry domain.Entry) (int, error) {
	if entry.IsBlank() {
		return 0, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendLocked(entry), nil
}

// AppendAll inserts a batch under one writer lock. Readers observe
// either none or all of the batch, with every index updated.
func (s *CatalogStore) AppendAll(_ context.Context, entries []domain.Entry) ([]int, error) {
	for i := range entries {
		if entries[i].IsBlank() {
			return nil, domain.ErrInvalidInput
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	positions := make([]int, len(entries))
	for i, e := range entries {
		positions[i] = s.appendLocked(e)
	}
	return positions, nil
}

// appendLocked assigns the next position and updates the indices.
// Callers must hold the write lock.
func (s *CatalogStore) appendLocked(entry domain.Entry) int {
	pos := len(s.entries)
	s.entries = append(s.entries, entry)

	if author := strings.TrimSpace(entry.Author); author != "" {
		s.indices[domain.IndexAuthor][author] = append(s.indices[domain.IndexAuthor][author], pos)
	}
	for _, theme := range entry.Themes {
		if theme = strings.TrimSpace(theme); theme != "" {
			s.indices[domain.IndexTheme][theme] = append(s.indices[domain.IndexTheme][theme], pos)
		}
	}
	// An unclassified period stays unindexed rather than keyed on "".
	if period := strings.TrimSpace(entry.Period); period != "" {
		s.indices[domain.IndexPeriod][period] = append(s.indices[domain.IndexPeriod][period], pos)
	}

	return pos
}

// Get retrieves the entry at a position.
func (s *CatalogStore) Get(_ context.Context, position int) (*domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if position < 0 || position >= len(s.entries) {
		return nil, domain.ErrNotFound
	}
	entry := s.entries[position]
	return &entry, nil
}

// Snapshot returns a copy of all entries in position order. The copy
// lets search strategies scan without holding the lock, so reads never
// interleave with a commit.
func (s *CatalogStore) Snapshot(_ context.Context) ([]domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]domain.Entry, len(s.entries))
	copy(snapshot, s.entries)
	return snapshot, nil
}

// EntriesBy returns entries under key in the named index, in position order.
func (s *CatalogStore) EntriesBy(_ context.Context, index domain.IndexName, key string) ([]domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.indices[index]
	if !ok {
		return nil, domain.ErrUnsupportedType
	}
	positions, ok := m[key]
	if !ok {
		return nil, domain.ErrNotFound
	}

	entries := make([]domain.Entry, len(positions))
	for i, pos := range positions {
		entries[i] = s.entries[pos]
	}
	return entries, nil
}

// Keys returns the sorted keys of the named index.
func (s *CatalogStore) Keys(_ context.Context, index domain.IndexName) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.indices[index]
	if !ok {
		return nil, domain.ErrUnsupportedType
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Statistics summarises the catalog. Unparsable dates are excluded
// from the date range without error.
func (s *CatalogStore) Statistics(_ context.Context) (*domain.Statistics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sources := make(map[string]bool)
	var dateRange *domain.YearRange
	for i := range s.entries {
		if src := s.entries[i].Source; src != "" {
			sources[src] = true
		}
		if year, ok := domain.ParseYear(s.entries[i].Date); ok {
			dateRange = dateRange.Extend(year)
		}
	}

	return &domain.Statistics{
		TotalEntries: len(s.entries),
		TotalAuthors: len(s.indices[domain.IndexAuthor]),
		TotalThemes:  len(s.indices[domain.IndexTheme]),
		TotalSources: len(sources),
		DateRange:    dateRange,
	}, nil
}

// Len returns the number of entries.
func (s *CatalogStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}
