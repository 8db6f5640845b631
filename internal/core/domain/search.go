package domain

import "fmt"

// SearchType selects one of the four matching strategies.
type SearchType string

const (
	// SearchTypeComprehensive runs all strategies and blends their scores.
	// This is the default and the most expensive.
	SearchTypeComprehensive SearchType = "comprehensive"

	// SearchTypeKeyword matches query tokens against entry text fields.
	SearchTypeKeyword SearchType = "keyword"

	// SearchTypeConceptual matches via the controlled theme vocabulary.
	SearchTypeConceptual SearchType = "conceptual"

	// SearchTypeFuzzy tolerates misspellings via string similarity.
	SearchTypeFuzzy SearchType = "fuzzy"
)

// MaxSearchResults is the hard ceiling on a caller's result limit.
const MaxSearchResults = 1000

// ParseSearchType validates a caller-supplied search type string.
// Unknown types fail with ErrUnsupportedType, never a silent fallback.
func ParseSearchType(s string) (SearchType, error) {
	switch SearchType(s) {
	case SearchTypeComprehensive, SearchTypeKeyword, SearchTypeConceptual, SearchTypeFuzzy:
		return SearchType(s), nil
	default:
		return "", fmt.Errorf("search type %q: %w", s, ErrUnsupportedType)
	}
}

// SearchOptions configures a search query.
type SearchOptions struct {
	// Type is the matching strategy. Empty defaults to comprehensive.
	Type SearchType

	// Limit is the maximum number of results. Must be positive and
	// no greater than MaxSearchResults.
	Limit int
}

// SearchResult represents a single search hit. Results are ephemeral
// and never persisted.
type SearchResult struct {
	// Position is the entry's identity within the catalog.
	Position int `json:"position"`

	// Entry is the matched entry.
	Entry Entry `json:"entry"`

	// Score is the strategy-dependent relevance score (>= 0).
	// Scores are not comparable across strategies.
	Score float64 `json:"score"`

	// MatchedFields names the entry fields that contributed to the
	// match, in stable field order, for explainability.
	MatchedFields []string `json:"matched_fields"`
}
