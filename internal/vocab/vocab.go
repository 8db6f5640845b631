// Package vocab holds the controlled theme vocabulary and era lookup
// table used by conceptual search and ingestion classification.
//
// The tables are policy data, not code: the defaults ship embedded in
// the binary and a user can override them with their own TOML file.
package vocab

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

//go:embed vocab.toml
var defaultTOML []byte

// Era maps an inclusive year range to a period label.
type Era struct {
	Label string `toml:"label"`
	From  int    `toml:"from"`
	To    int    `toml:"to"`
}

// Vocabulary is the parsed concept and era table.
type Vocabulary struct {
	// Version identifies the table revision.
	Version int `toml:"version"`

	// Concepts maps lowercase concept terms to theme labels.
	Concepts map[string][]string `toml:"concepts"`

	// PeriodSynonyms maps lowercase query words to period labels.
	PeriodSynonyms map[string]string `toml:"period_synonyms"`

	// Eras is the ordered era lookup table. First match wins.
	Eras []Era `toml:"eras"`
}

var (
	defaultOnce sync.Once
	defaultV    *Vocabulary
	defaultErr  error
)

// Default returns the embedded vocabulary. The embedded table is part
// of the build, so a parse failure here is a programming error.
func Default() *Vocabulary {
	defaultOnce.Do(func() {
		defaultV, defaultErr = parse(defaultTOML)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("embedded vocabulary: %v", defaultErr))
	}
	return defaultV
}

// Load reads a vocabulary override from a TOML file.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary %s: %w", path, err)
	}
	v, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing vocabulary %s: %w", path, err)
	}
	return v, nil
}

func parse(data []byte) (*Vocabulary, error) {
	var v Vocabulary
	if err := toml.Unmarshal(data, &v); err != nil {
		return nil, err
	}

	// Normalise lookup keys once so matching is case-insensitive.
	concepts := make(map[string][]string, len(v.Concepts))
	for term, themes := range v.Concepts {
		concepts[strings.ToLower(term)] = themes
	}
	v.Concepts = concepts

	synonyms := make(map[string]string, len(v.PeriodSynonyms))
	for term, label := range v.PeriodSynonyms {
		synonyms[strings.ToLower(term)] = label
	}
	v.PeriodSynonyms = synonyms

	return &v, nil
}

// ThemesFor returns the theme labels mapped to a single concept term,
// or nil when the term is not in the vocabulary.
func (v *Vocabulary) ThemesFor(term string) []string {
	return v.Concepts[strings.ToLower(strings.TrimSpace(term))]
}

// PeriodFor returns the period label a query word names directly.
func (v *Vocabulary) PeriodFor(term string) (string, bool) {
	label, ok := v.PeriodSynonyms[strings.ToLower(strings.TrimSpace(term))]
	return label, ok
}

// PeriodForYear places a year in the era table. Years outside every
// era stay unclassified: the empty string is returned rather than a
// guessed label.
func (v *Vocabulary) PeriodForYear(year int) (string, bool) {
	for _, era := range v.Eras {
		if year >= era.From && year <= era.To {
			return era.Label, true
		}
	}
	return "", false
}

// ThemesForText scans free text for concept terms and returns the
// union of their themes, deduplicated, ordered by term so the output
// is deterministic. Multi-word terms match inside the lowercased text.
func (v *Vocabulary) ThemesForText(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var themes []string

	terms := make([]string, 0, len(v.Concepts))
	for term := range v.Concepts {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	for _, term := range terms {
		if !containsTerm(lower, term) {
			continue
		}
		for _, theme := range v.Concepts[term] {
			if !seen[theme] {
				seen[theme] = true
				themes = append(themes, theme)
			}
		}
	}

	return themes
}

// containsTerm reports whether term occurs in text on word boundaries.
// A plain substring check would turn "art" into a match for "Descartes".
func containsTerm(text, term string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], term)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(term)
		beforeOK := start == 0 || !isWordChar(text[start-1])
		afterOK := end == len(text) || !isWordChar(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
