package plaintext

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
	assert.Contains(t, extractor.SupportedMIMETypes(), "text/plain")
	assert.Equal(t, 5, extractor.Priority())
}

func TestExtract(t *testing.T) {
	extractor := New()
	ctx := context.Background()

	content := `Reading list for the seminar.

1. Plato, Republic (-375)
2. Hume, A Treatise of Human Nature (1739)

Some commentary that is not a citation at all, spanning a line.

Hobbes, Leviathan (1651)
`

	raw := &domain.RawDocument{
		URI:      "/uploads/readings.txt",
		MIMEType: "text/plain",
		Content:  []byte(content),
	}

	entries, err := extractor.Extract(ctx, raw)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Plato", entries[0].Author)
	assert.Equal(t, "Republic", entries[0].Title)
	assert.Equal(t, "readings.txt", entries[0].Source)
	assert.Equal(t, "Hume", entries[1].Author)
	assert.Equal(t, "Hobbes", entries[2].Author)
}

func TestExtractNoCitations(t *testing.T) {
	extractor := New()

	raw := &domain.RawDocument{
		URI:      "/uploads/essay.txt",
		MIMEType: "text/plain",
		Content:  []byte("An essay with paragraphs of ordinary prose.\nNothing cite-shaped here.\n"),
	}

	entries, err := extractor.Extract(context.Background(), raw)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExtractNilDocument(t *testing.T) {
	extractor := New()

	_, err := extractor.Extract(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
