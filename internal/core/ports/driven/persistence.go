package driven

import (
	"context"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
)

// CatalogPersistence stores the catalog durably. Only entries are
// persisted; indices are derived data and are rebuilt deterministically
// at load time.
type CatalogPersistence interface {
	// ReplaceEntries writes the full entry sequence in one atomic
	// step. A crash mid-write never corrupts the previous state.
	ReplaceEntries(ctx context.Context, entries []domain.Entry) error

	// LoadEntries reads all persisted entries in position order.
	// An empty store yields an empty slice, not an error.
	LoadEntries(ctx context.Context) ([]domain.Entry, error)

	// Close releases resources.
	Close() error
}
