package exporters

import (
	"encoding/json"
	"io"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
	"github.com/custodia-labs/folio-cli/internal/core/ports/driven"
)

var _ driven.Exporter = (*JSON)(nil)

// JSON exports entries as an indented JSON array.
type JSON struct{}

// NewJSON creates a JSON exporter.
func NewJSON() *JSON {
	return &JSON{}
}

func (e *JSON) Format() string    { return "json" }
func (e *JSON) Extension() string { return "json" }

func (e *JSON) Export(w io.Writer, entries []domain.Entry) error {
	if entries == nil {
		entries = []domain.Entry{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(entries)
}
