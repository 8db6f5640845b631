package exporters

import (
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
	"github.com/custodia-labs/folio-cli/internal/core/ports/driven"
)

var _ driven.Exporter = (*Markdown)(nil)

// Markdown exports entries as a GitHub-flavoured table.
type Markdown struct{}

// NewMarkdown creates a Markdown exporter.
func NewMarkdown() *Markdown {
	return &Markdown{}
}

func (e *Markdown) Format() string    { return "markdown" }
func (e *Markdown) Extension() string { return "md" }

func (e *Markdown) Export(w io.Writer, entries []domain.Entry) error {
	var b strings.Builder

	b.WriteString("# Catalog Export\n\n")
	fmt.Fprintf(&b, "%d entries.\n\n", len(entries))
	b.WriteString("| Author | Title | Date | Period | Themes | Notes | Source |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- |\n")

	for i := range entries {
		record := entryRecord(&entries[i])
		for j, cell := range record {
			record[j] = strings.ReplaceAll(cell, "|", "\\|")
		}
		fmt.Fprintf(&b, "| %s |\n", strings.Join(record, " | "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
