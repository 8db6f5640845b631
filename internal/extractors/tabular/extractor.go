// Package tabular extracts catalog entries from delimited files.
// One row becomes one candidate entry; column headers are mapped with
// case-insensitive name heuristics and unmapped columns populate notes.
package tabular

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
	"github.com/custodia-labs/folio-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles CSV and TSV documents.
type Extractor struct{}

// New creates a new delimited-file extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{
		"text/csv",
		"text/tab-separated-values",
	}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 50 // Format-specific extractor
}

// Extract parses rows into candidate entries.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawDocument) ([]domain.Entry, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	source := filepath.Base(raw.URI)

	reader := csv.NewReader(bytes.NewReader(raw.Content))
	reader.FieldsPerRecord = -1 // Tolerate ragged rows
	if raw.MIMEType == "text/tab-separated-values" {
		reader.Comma = '\t'
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", source, err, domain.ErrExtraction)
	}

	return EntriesFromRows(records, source), nil
}

// EntriesFromRows maps tabular rows to candidate entries using the
// header-name heuristics. The spreadsheet extractor feeds its rows
// through the same mapping, so CSV and XLSX behave identically.
func EntriesFromRows(records [][]string, source string) []domain.Entry {
	if len(records) == 0 {
		return nil
	}

	columns := mapColumns(records[0])
	rows := records
	if columns.recognised() {
		rows = records[1:]
	}

	entries := make([]domain.Entry, 0, len(rows))
	for _, row := range rows {
		entry := columns.entryFor(row)
		entry.Source = source
		entries = append(entries, entry)
	}

	return entries
}

// columnMap records which column index feeds which entry field.
// Unmapped columns are collected into notes with their header name.
type columnMap struct {
	author, title, date, period, themes, notes int
	headers                                    []string
}

// Header-name heuristics, all compared lowercase.
var (
	authorHeaders = []string{"author", "authors", "creator", "writer", "by"}
	titleHeaders  = []string{"title", "name", "work"}
	dateHeaders   = []string{"date", "year", "published", "publication year"}
	periodHeaders = []string{"period", "era", "epoch"}
	themeHeaders  = []string{"themes", "theme", "subjects", "subject", "topics", "tags"}
	noteHeaders   = []string{"notes", "note", "description", "comments", "remarks"}
)

func mapColumns(header []string) *columnMap {
	m := &columnMap{author: -1, title: -1, date: -1, period: -1, themes: -1, notes: -1, headers: header}
	for i, h := range header {
		switch key := strings.ToLower(strings.TrimSpace(h)); {
		case m.author < 0 && contains(authorHeaders, key):
			m.author = i
		case m.title < 0 && contains(titleHeaders, key):
			m.title = i
		case m.date < 0 && contains(dateHeaders, key):
			m.date = i
		case m.period < 0 && contains(periodHeaders, key):
			m.period = i
		case m.themes < 0 && contains(themeHeaders, key):
			m.themes = i
		case m.notes < 0 && contains(noteHeaders, key):
			m.notes = i
		}
	}
	return m
}

// recognised reports whether the first row looked like a header.
// Without one, rows map positionally: author, title, date.
func (m *columnMap) recognised() bool {
	return m.author >= 0 || m.title >= 0
}

func (m *columnMap) entryFor(row []string) domain.Entry {
	if !m.recognised() {
		return positionalEntry(row)
	}

	var entry domain.Entry
	var extra []string

	for i, value := range row {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		switch i {
		case m.author:
			entry.Author = value
		case m.title:
			entry.Title = value
		case m.date:
			entry.Date = value
		case m.period:
			entry.Period = value
		case m.themes:
			entry.Themes = splitThemes(value)
		case m.notes:
			entry.Notes = value
		default:
			// Unmapped column: keep the data, labelled by header.
			label := ""
			if i < len(m.headers) {
				label = strings.TrimSpace(m.headers[i])
			}
			if label != "" {
				extra = append(extra, label+": "+value)
			} else {
				extra = append(extra, value)
			}
		}
	}

	if len(extra) > 0 {
		if entry.Notes != "" {
			extra = append([]string{entry.Notes}, extra...)
		}
		entry.Notes = strings.Join(extra, "; ")
	}

	return entry
}

// positionalEntry is the headerless fallback: author, title, date.
func positionalEntry(row []string) domain.Entry {
	var entry domain.Entry
	if len(row) > 0 {
		entry.Author = strings.TrimSpace(row[0])
	}
	if len(row) > 1 {
		entry.Title = strings.TrimSpace(row[1])
	}
	if len(row) > 2 {
		entry.Date = strings.TrimSpace(row[2])
	}
	if len(row) > 3 {
		entry.Notes = strings.TrimSpace(strings.Join(row[3:], "; "))
	}
	return entry
}

// splitThemes splits a themes cell on the common list separators.
func splitThemes(value string) []string {
	split := strings.FieldsFunc(value, func(r rune) bool {
		return r == ';' || r == '|' || r == ','
	})
	themes := make([]string, 0, len(split))
	for _, t := range split {
		if t = strings.TrimSpace(t); t != "" {
			themes = append(themes, t)
		}
	}
	return themes
}

func contains(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}
