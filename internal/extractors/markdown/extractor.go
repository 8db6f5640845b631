// Package markdown extracts catalog entries from Markdown documents.
package markdown

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
	"github.com/custodia-labs/folio-cli/internal/core/ports/driven"
	"github.com/custodia-labs/folio-cli/internal/extractors/citation"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

var (
	heading  = regexp.MustCompile(`^#{1,6}\s`)
	mdLink   = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	codeSpan = regexp.MustCompile("`[^`]*`")
)

// Extractor handles Markdown documents. Structural markup is stripped
// and the remaining lines go through the citation heuristics, so both
// bulleted reading lists and numbered bibliographies parse.
type Extractor struct{}

// New creates a new Markdown extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{
		"text/markdown",
		"text/x-markdown",
	}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 50 // Format-specific extractor
}

// Extract parses citation-shaped lines, skipping headings, code
// fences, and lines with no recognised shape.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawDocument) ([]domain.Entry, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	source := filepath.Base(raw.URI)
	var entries []domain.Entry
	inFence := false

	for _, line := range strings.Split(string(raw.Content), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence || heading.MatchString(trimmed) {
			continue
		}

		// Keep link text, drop the URL; drop code spans entirely.
		trimmed = mdLink.ReplaceAllString(trimmed, "$1")
		trimmed = codeSpan.ReplaceAllString(trimmed, "")

		entry, ok := citation.Parse(trimmed)
		if !ok {
			continue
		}
		entry.Source = source
		entries = append(entries, entry)
	}

	return entries, nil
}
