package driving

import (
	"context"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search runs the selected strategy over the catalog and returns
	// ranked results: strictly descending by score, ties broken by
	// catalog position ascending, truncated to opts.Limit.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}
