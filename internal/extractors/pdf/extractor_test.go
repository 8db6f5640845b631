package pdf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
)

func TestNew(t *testing.T) {
	extractor := New()
	require.NotNil(t, extractor)
	assert.Equal(t, []string{"application/pdf"}, extractor.SupportedMIMETypes())
	assert.Equal(t, 50, extractor.Priority())
}

func TestExtractCorruptFile(t *testing.T) {
	extractor := New()

	raw := &domain.RawDocument{
		URI:      "/uploads/broken.pdf",
		MIMEType: "application/pdf",
		Content:  []byte("%PDF-1.4 truncated garbage"),
	}

	_, err := extractor.Extract(context.Background(), raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExtraction)
	assert.Contains(t, err.Error(), "broken.pdf")
}

func TestExtractNilDocument(t *testing.T) {
	extractor := New()

	_, err := extractor.Extract(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
