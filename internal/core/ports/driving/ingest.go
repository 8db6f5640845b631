package driving

import (
	"context"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
)

// IngestService turns documents into catalog entries.
type IngestService interface {
	// ProcessDocument runs one ingestion transaction over the file at
	// path: extract, deduplicate, classify, validate, commit, report.
	// The catalog is untouched until commit; an extraction failure
	// leaves prior state intact.
	ProcessDocument(ctx context.Context, path string) (*domain.IngestReport, error)

	// Watch ingests documents dropped into dir until ctx is cancelled.
	// Each completed file produces one ingestion run.
	Watch(ctx context.Context, dir string) error
}
