package exporters

import (
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
	"github.com/custodia-labs/folio-cli/internal/core/ports/driven"
)

var _ driven.Exporter = (*BibTeX)(nil)

// BibTeX exports entries as @book records. Citation keys are derived
// from the author's last name and the date, with a letter suffix when
// two entries would collide.
type BibTeX struct{}

// NewBibTeX creates a BibTeX exporter.
func NewBibTeX() *BibTeX {
	return &BibTeX{}
}

func (e *BibTeX) Format() string    { return "bibtex" }
func (e *BibTeX) Extension() string { return "bib" }

func (e *BibTeX) Export(w io.Writer, entries []domain.Entry) error {
	used := make(map[string]int)

	for i := range entries {
		entry := &entries[i]

		// First occurrence keeps the bare key; collisions append a, b, ...
		key := citationKey(entry)
		if n := used[key]; n > 0 {
			key = fmt.Sprintf("%s%c", key, 'a'+n-1)
		}
		used[citationKey(entry)]++

		var b strings.Builder
		fmt.Fprintf(&b, "@book{%s,\n", key)
		writeBibField(&b, "author", entry.Author)
		writeBibField(&b, "title", entry.Title)
		writeBibField(&b, "year", entry.Date)
		writeBibField(&b, "keywords", strings.Join(entry.Themes, ", "))
		writeBibField(&b, "note", entry.Notes)
		b.WriteString("}\n")

		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}

	return nil
}

func writeBibField(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	value = strings.NewReplacer("{", "", "}", "").Replace(value)
	fmt.Fprintf(b, "  %s = {%s},\n", name, value)
}

// citationKey builds "hume1739"-style keys from the author's last
// name and the digits of the date.
func citationKey(entry *domain.Entry) string {
	name := "anon"
	if words := strings.Fields(entry.Author); len(words) > 0 {
		var b strings.Builder
		for _, r := range strings.ToLower(words[len(words)-1]) {
			if r >= 'a' && r <= 'z' {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			name = b.String()
		}
	}

	var digits strings.Builder
	for _, r := range entry.Date {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return name + digits.String()
}
