package domain

import "strings"

// Entry represents one bibliographic work in the catalog.
// It is the canonical representation after extraction and classification.
type Entry struct {
	// Author is the creator name(s). Free text, may hold multiple names.
	Author string `json:"author"`

	// Title is the work's title.
	Title string `json:"title"`

	// Date is a year, range, or approximate label ("-375", "c. 1650").
	// Not guaranteed to be numeric.
	Date string `json:"date"`

	// Period is the historical-era label ("Ancient", "Early Modern").
	// Assigned during classification, empty when the date cannot be placed.
	Period string `json:"period"`

	// Themes are subject labels. Insertion order is preserved for display.
	Themes []string `json:"themes"`

	// Notes is optional free text.
	Notes string `json:"notes"`

	// Source records provenance: the base collection or ingested file name.
	Source string `json:"source"`
}

// HasTheme reports whether the entry carries the given theme label.
func (e *Entry) HasTheme(theme string) bool {
	for _, t := range e.Themes {
		if strings.EqualFold(t, theme) {
			return true
		}
	}
	return false
}

// IsBlank reports whether both author and title are empty after trimming.
// Blank entries violate the catalog's hard invariant and are never stored.
func (e *Entry) IsBlank() bool {
	return strings.TrimSpace(e.Author) == "" && strings.TrimSpace(e.Title) == ""
}

// IndexName identifies one of the catalog's secondary indices.
type IndexName string

const (
	// IndexAuthor maps author names to entry positions.
	IndexAuthor IndexName = "author"

	// IndexTheme maps theme labels to entry positions.
	IndexTheme IndexName = "theme"

	// IndexPeriod maps period labels to entry positions.
	IndexPeriod IndexName = "period"
)

// RawDocument represents opaque bytes handed to the extraction pipeline.
// It is the ingestion input before any parsing.
type RawDocument struct {
	// URI is the original location, usually a file path.
	URI string

	// MIMEType is the content type (e.g., "text/csv").
	MIMEType string

	// Content is the raw bytes.
	Content []byte
}
