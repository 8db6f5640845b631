package driven

import (
	"context"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
)

// CatalogStore holds the ordered catalog of entries plus the derived
// author/theme/period indices. Entries are append-only: a position,
// once assigned, is the entry's identity for the process lifetime and
// is never reused or removed.
//
// Implementations must keep indices consistent with entries on every
// mutation; readers never observe an entry present in the arena but
// missing from an index, or vice versa.
type CatalogStore interface {
	// Append inserts one entry, updates all indices atomically and
	// returns the assigned position.
	Append(ctx context.Context, entry domain.Entry) (int, error)

	// AppendAll inserts a batch of entries under a single writer
	// lock, so one ingestion commit is one atomic mutation. Returns
	// the assigned positions in input order.
	AppendAll(ctx context.Context, entries []domain.Entry) ([]int, error)

	// Get retrieves the entry at a position.
	Get(ctx context.Context, position int) (*domain.Entry, error)

	// Snapshot returns a copy of all entries in position order.
	// Search strategies scan the snapshot without holding the lock.
	Snapshot(ctx context.Context) ([]domain.Entry, error)

	// EntriesBy returns the entries recorded under key in the named
	// index, in position order. Fails with domain.ErrNotFound when
	// the key is absent; callers should check Keys first.
	EntriesBy(ctx context.Context, index domain.IndexName, key string) ([]domain.Entry, error)

	// Keys returns the sorted keys of the named index.
	Keys(ctx context.Context, index domain.IndexName) ([]string, error)

	// Statistics summarises the catalog. Entries whose dates do not
	// parse are excluded from the date range without error.
	Statistics(ctx context.Context) (*domain.Statistics, error)

	// Len returns the number of entries.
	Len(ctx context.Context) (int, error)
}
