package exporters

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
	"github.com/custodia-labs/folio-cli/internal/extractors/xlsx"
)

func sampleEntries() []domain.Entry {
	return []domain.Entry{
		{
			Author: "David Hume",
			Title:  "A Treatise of Human Nature",
			Date:   "1739",
			Period: "Early Modern",
			Themes: []string{"epistemology", "empiricism"},
			Notes:  "Experimental method applied to moral subjects.",
			Source: "seed",
		},
		{
			Author: "Plato",
			Title:  "The Republic",
			Date:   "c. 375 BCE",
			Period: "Ancient",
			Themes: []string{"justice"},
			Source: "seed",
		},
	}
}

func TestCSVExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSV().Export(&buf, sampleEntries()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, entryHeader, records[0])
	assert.Equal(t, "David Hume", records[1][0])
	assert.Equal(t, "epistemology; empiricism", records[1][4])
	assert.Equal(t, "The Republic", records[2][1])
}

func TestJSONExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSON().Export(&buf, sampleEntries()))

	var decoded []domain.Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleEntries(), decoded)
}

func TestJSONExportEmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSON().Export(&buf, nil))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestBibTeXExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewBibTeX().Export(&buf, sampleEntries()))
	out := buf.String()

	assert.Contains(t, out, "@book{hume1739,")
	assert.Contains(t, out, "author = {David Hume},")
	assert.Contains(t, out, "title = {A Treatise of Human Nature},")
	assert.Contains(t, out, "keywords = {epistemology, empiricism},")
	assert.Contains(t, out, "@book{plato375,")
}

func TestBibTeXExportDisambiguatesKeys(t *testing.T) {
	var buf bytes.Buffer
	entries := []domain.Entry{
		{Author: "David Hume", Title: "Essays, Moral and Political", Date: "1741", Source: "s"},
		{Author: "David Hume", Title: "A Letter from a Gentleman", Date: "1741", Source: "s"},
		{Author: "David Hume", Title: "Three Essays", Date: "1741", Source: "s"},
	}
	require.NoError(t, NewBibTeX().Export(&buf, entries))

	assert.Contains(t, buf.String(), "@book{hume1741,")
	assert.Contains(t, buf.String(), "@book{hume1741a,")
	assert.Contains(t, buf.String(), "@book{hume1741b,")
}

func TestMarkdownExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdown().Export(&buf, sampleEntries()))
	out := buf.String()

	assert.Contains(t, out, "| Author | Title | Date | Period | Themes | Notes | Source |")
	assert.Contains(t, out, "| David Hume | A Treatise of Human Nature |")
	assert.Contains(t, out, "2 entries.")
}

func TestMarkdownExportEscapesPipes(t *testing.T) {
	var buf bytes.Buffer
	entries := []domain.Entry{
		{Author: "Anonymous", Title: "Either|Or", Source: "s"},
	}
	require.NoError(t, NewMarkdown().Export(&buf, entries))
	assert.Contains(t, buf.String(), `Either\|Or`)
}

func TestXLSXExportRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewXLSX().Export(&buf, sampleEntries()))

	// The workbook must be readable by the matching extractor.
	raw := &domain.RawDocument{
		URI:      "export.xlsx",
		MIMEType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:  buf.Bytes(),
	}
	decoded, err := xlsx.New().Extract(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, decoded, 2)

	assert.Equal(t, "David Hume", decoded[0].Author)
	assert.Equal(t, "A Treatise of Human Nature", decoded[0].Title)
	assert.Equal(t, "1739", decoded[0].Date)
	assert.Equal(t, []string{"epistemology", "empiricism"}, decoded[0].Themes)
	assert.Equal(t, "Plato", decoded[1].Author)
}

func TestColumnName(t *testing.T) {
	assert.Equal(t, "A", columnName(0))
	assert.Equal(t, "G", columnName(6))
	assert.Equal(t, "Z", columnName(25))
	assert.Equal(t, "AA", columnName(26))
}
