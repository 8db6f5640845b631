package extractors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
)

// fakeExtractor implements driven.Extractor for registry tests.
type fakeExtractor struct {
	mimeTypes []string
	priority  int
}

func (f *fakeExtractor) SupportedMIMETypes() []string { return f.mimeTypes }
func (f *fakeExtractor) Priority() int                { return f.priority }
func (f *fakeExtractor) Extract(_ context.Context, _ *domain.RawDocument) ([]domain.Entry, error) {
	return nil, nil
}

func TestRegistrySelectsByMIME(t *testing.T) {
	csv := &fakeExtractor{mimeTypes: []string{"text/csv"}, priority: 50}
	txt := &fakeExtractor{mimeTypes: []string{"text/plain"}, priority: 5}
	registry := NewRegistry(csv, txt)

	assert.Equal(t, csv, registry.ForMIME("text/csv"))
	assert.Equal(t, txt, registry.ForMIME("text/plain"))
	assert.Nil(t, registry.ForMIME("application/pdf"))
}

func TestRegistryPrefersHigherPriority(t *testing.T) {
	fallback := &fakeExtractor{mimeTypes: []string{"text/plain"}, priority: 5}
	specific := &fakeExtractor{mimeTypes: []string{"text/plain"}, priority: 50}
	registry := NewRegistry(fallback, specific)

	assert.Equal(t, specific, registry.ForMIME("text/plain"))
}

func TestForDocument(t *testing.T) {
	registry := NewRegistry(&fakeExtractor{mimeTypes: []string{"text/csv"}, priority: 50})

	e, err := registry.ForDocument(&domain.RawDocument{MIMEType: "text/csv"})
	require.NoError(t, err)
	assert.NotNil(t, e)

	_, err = registry.ForDocument(&domain.RawDocument{MIMEType: "image/png"})
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestDetectMIMEType(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"works.csv", "text/csv"},
		{"works.tsv", "text/tab-separated-values"},
		{"readings.md", "text/markdown"},
		{"notes.txt", "text/plain"},
		{"library.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{"paper.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"scan.pdf", "application/pdf"},
		{"UPPER.CSV", "text/csv"},
		{"noextension", "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			mt := DetectMIMEType(tt.filename)
			assert.Equal(t, tt.expected, mt)
			assert.NotContains(t, mt, ";")
		})
	}
}
