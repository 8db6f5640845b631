package driving

import (
	"context"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
)

// CatalogService exposes read access and persistence to external actors.
type CatalogService interface {
	// Statistics summarises the catalog.
	Statistics(ctx context.Context) (*domain.Statistics, error)

	// Entries returns all entries in catalog order.
	Entries(ctx context.Context) ([]domain.Entry, error)

	// EntriesBy lists entries under key in the named index.
	EntriesBy(ctx context.Context, index domain.IndexName, key string) ([]domain.Entry, error)

	// Keys lists the sorted keys of the named index.
	Keys(ctx context.Context, index domain.IndexName) ([]string, error)

	// Save persists the current catalog durably and atomically.
	Save(ctx context.Context) error
}
