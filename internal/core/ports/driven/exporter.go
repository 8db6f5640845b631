package driven

import (
	"io"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
)

// Exporter serialises entries into one output format. The byte-level
// encoding belongs to the exporter; every format carries the same
// fields in stable order (author, title, date, period, themes, notes,
// source).
type Exporter interface {
	// Format returns the format name ("csv", "bibtex", ...).
	Format() string

	// Extension returns the output file extension without the dot.
	Extension() string

	// Export writes the serialised entries to w.
	Export(w io.Writer, entries []domain.Entry) error
}
