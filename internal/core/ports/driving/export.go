package driving

import (
	"context"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
)

// ExportService serialises entries to files for the presentation layer.
type ExportService interface {
	// Export writes entries in the named format and returns the
	// generated file's path. Unknown formats fail with
	// domain.ErrUnsupportedType.
	Export(ctx context.Context, entries []domain.Entry, format string) (string, error)

	// Formats returns the supported format names, sorted.
	Formats() []string
}
