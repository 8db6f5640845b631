// Package citation parses free-text lines into bibliographic entries.
//
// The free-text extractors (plain text, Markdown, DOCX, PDF) all feed
// their lines through the same closed set of citation shapes. A line
// that matches no shape is skipped, never fabricated into an entry.
package citation

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
)

var (
	// listPrefix strips bullets and citation-list numbering.
	listPrefix = regexp.MustCompile(`^\s*(?:\d+[.)]\s+|[-*•]\s+)`)

	// parenShape matches "Author, Title (Year)" with optional
	// trailing notes after the closing parenthesis.
	parenShape = regexp.MustCompile(`^(.{2,80}?),\s+(.{2,200}?)\s*\(([^)]{1,40})\)\s*[.,;:—–-]?\s*(.*)$`)

	// dashShape matches "Author - Title, Year".
	dashShape = regexp.MustCompile(`^(.{2,80}?)\s+[–—-]\s+(.{2,200}?),\s*(-?\d{1,4}(?:\s*(?:BCE?|CE))?)\s*$`)

	// dotShape matches "Author. Title. Year."
	dotShape = regexp.MustCompile(`^([A-Z][^.]{1,79})\.\s+([^.]{2,199})\.\s*(-?\d{1,4}(?:\s*(?:BCE?|CE))?)\.?\s*$`)
)

// Parse attempts to read one line as a citation. Returns false when
// the line matches none of the recognised shapes. Author and title are
// always populated on success; date and notes are best effort.
func Parse(line string) (domain.Entry, bool) {
	line = strings.TrimSpace(line)
	line = listPrefix.ReplaceAllString(line, "")
	if line == "" {
		return domain.Entry{}, false
	}

	if m := parenShape.FindStringSubmatch(line); m != nil && hasDigit(m[3]) {
		entry := domain.Entry{
			Author: cleanField(m[1]),
			Title:  cleanField(m[2]),
			Date:   strings.TrimSpace(m[3]),
			Notes:  cleanField(m[4]),
		}
		if plausible(entry) {
			return entry, true
		}
	}

	if m := dashShape.FindStringSubmatch(line); m != nil {
		entry := domain.Entry{
			Author: cleanField(m[1]),
			Title:  cleanField(m[2]),
			Date:   strings.TrimSpace(m[3]),
		}
		if plausible(entry) {
			return entry, true
		}
	}

	if m := dotShape.FindStringSubmatch(line); m != nil {
		entry := domain.Entry{
			Author: cleanField(m[1]),
			Title:  cleanField(m[2]),
			Date:   strings.TrimSpace(m[3]),
		}
		if plausible(entry) {
			return entry, true
		}
	}

	return domain.Entry{}, false
}

// cleanField trims whitespace and the emphasis or quote markers that
// Markdown and word processors wrap around titles.
func cleanField(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `*_"'`)
	s = strings.TrimPrefix(s, "“")
	s = strings.TrimSuffix(s, "”")
	s = strings.TrimPrefix(s, "«")
	s = strings.TrimSuffix(s, "»")
	return strings.TrimSpace(s)
}

// hasDigit guards the parenthesised group: a year label always carries
// a digit, a parenthetical aside usually does not.
func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// plausible rejects matches that are shaped like citations but are
// clearly prose: empty fields or authors that run on like sentences.
func plausible(e domain.Entry) bool {
	if e.Author == "" || e.Title == "" {
		return false
	}
	// An author field with many words is almost always prose.
	if len(strings.Fields(e.Author)) > 6 {
		return false
	}
	return true
}
