package exporters

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
	"github.com/custodia-labs/folio-cli/internal/core/ports/driven"
)

var _ driven.Exporter = (*CSV)(nil)

// entryHeader is the column order shared by the tabular formats.
var entryHeader = []string{"author", "title", "date", "period", "themes", "notes", "source"}

// entryRecord flattens an entry into the shared column order. Themes
// are joined with "; " so the list survives a round trip through a
// single cell.
func entryRecord(entry *domain.Entry) []string {
	return []string{
		entry.Author,
		entry.Title,
		entry.Date,
		entry.Period,
		strings.Join(entry.Themes, "; "),
		entry.Notes,
		entry.Source,
	}
}

// CSV exports entries as RFC 4180 comma-separated values with a
// header row.
type CSV struct{}

// NewCSV creates a CSV exporter.
func NewCSV() *CSV {
	return &CSV{}
}

func (e *CSV) Format() string    { return "csv" }
func (e *CSV) Extension() string { return "csv" }

func (e *CSV) Export(w io.Writer, entries []domain.Entry) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(entryHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range entries {
		if err := writer.Write(entryRecord(&entries[i])); err != nil {
			return fmt.Errorf("write entry %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
