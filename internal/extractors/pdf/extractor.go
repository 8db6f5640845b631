// Package pdf extracts catalog entries from PDF documents.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
	"github.com/custodia-labs/folio-cli/internal/core/ports/driven"
	"github.com/custodia-labs/folio-cli/internal/extractors/citation"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles PDF documents. Text is recovered row by row so
// the citation heuristics see one candidate line at a time.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"application/pdf"}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 50 // Format-specific extractor
}

// Extract parses text rows as citations.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawDocument) (entries []domain.Entry, err error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	source := filepath.Base(raw.URI)

	// The pdf library panics on some malformed files; surface those
	// as extraction failures instead of crashing the ingestion run.
	defer func() {
		if r := recover(); r != nil {
			entries = nil
			err = fmt.Errorf("%s: %v: %w", source, r, domain.ErrExtraction)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(raw.Content), int64(len(raw.Content)))
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", source, err, domain.ErrExtraction)
	}

	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			// A single unreadable page does not void the rest.
			continue
		}

		for _, row := range rows {
			var line strings.Builder
			for _, text := range row.Content {
				line.WriteString(text.S)
			}

			entry, ok := citation.Parse(line.String())
			if !ok {
				continue
			}
			entry.Source = source
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
