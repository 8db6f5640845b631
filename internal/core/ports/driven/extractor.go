package driven

import (
	"context"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
)

// Extractor turns a raw document into candidate catalog entries.
// Each extractor handles specific MIME types (e.g., CSV, DOCX).
type Extractor interface {
	// SupportedMIMETypes returns the MIME types this extractor handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred)
	// when several extractors claim the same MIME type.
	// Format-specific extractors should return 50-89.
	// Fallback extractors should return 1-9.
	Priority() int

	// Extract parses the raw document into zero or more candidates
	// with best-effort field population. Every candidate carries
	// Source = the originating file name. A document with no
	// recognisable records yields an empty slice, not an error;
	// unreadable or corrupt bytes fail with domain.ErrExtraction
	// wrapped with the file name.
	Extract(ctx context.Context, raw *domain.RawDocument) ([]domain.Entry, error)
}
