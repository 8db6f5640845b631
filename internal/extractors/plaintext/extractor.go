// Package plaintext extracts catalog entries from plain text files.
package plaintext

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
	"github.com/custodia-labs/folio-cli/internal/core/ports/driven"
	"github.com/custodia-labs/folio-cli/internal/extractors/citation"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain text documents line by line. A line that
// matches none of the recognised citation shapes is skipped.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"text/plain"}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 5 // Fallback extractor
}

// Extract parses each line as a citation and drops lines that match
// no shape.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawDocument) ([]domain.Entry, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	source := filepath.Base(raw.URI)
	var entries []domain.Entry

	for _, line := range strings.Split(string(raw.Content), "\n") {
		entry, ok := citation.Parse(line)
		if !ok {
			continue
		}
		entry.Source = source
		entries = append(entries, entry)
	}

	return entries, nil
}
