package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
	"github.com/custodia-labs/folio-cli/internal/core/ports/driven"
	"github.com/custodia-labs/folio-cli/internal/core/ports/driving"
	"github.com/custodia-labs/folio-cli/internal/logger"
	"github.com/custodia-labs/folio-cli/internal/vocab"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// Field weights for keyword scoring: title and author outweigh notes.
const (
	weightAuthor = 3.0
	weightTitle  = 3.0
	weightThemes = 2.0
	weightNotes  = 1.0
)

// Strategy weights for the comprehensive blend.
const (
	blendKeyword    = 1.0
	blendConceptual = 0.8
	blendFuzzy      = 0.6
)

// fuzzyThreshold is the minimum similarity for a fuzzy hit.
const fuzzyThreshold = 0.6

// SearchService scans the catalog with one of four interchangeable
// matching strategies. Every strategy is linear in catalog size for a
// fixed query; none builds per-search state proportional to the
// catalog squared.
type SearchService struct {
	store driven.CatalogStore
	vocab *vocab.Vocabulary
}

// NewSearchService creates a new search service.
func NewSearchService(store driven.CatalogStore, vocabulary *vocab.Vocabulary) *SearchService {
	if vocabulary == nil {
		vocabulary = vocab.Default()
	}
	return &SearchService{store: store, vocab: vocabulary}
}

// Search runs the selected strategy and returns ranked results.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty query: %w", domain.ErrInvalidQuery)
	}

	searchType := opts.Type
	if searchType == "" {
		searchType = domain.SearchTypeComprehensive
	}
	if _, err := domain.ParseSearchType(string(searchType)); err != nil {
		return nil, err
	}

	if opts.Limit <= 0 || opts.Limit > domain.MaxSearchResults {
		return nil, fmt.Errorf("limit %d out of range [1, %d]: %w",
			opts.Limit, domain.MaxSearchResults, domain.ErrInvalidInput)
	}

	logger.Debug("Type: %s, Limit: %d", searchType, opts.Limit)

	// The query is analysed once; per-entry work is then proportional
	// to field lengths only.
	pq := s.parseQuery(query)

	entries, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot catalog: %w", err)
	}
	logger.Debug("Scanning %d entries", len(entries))

	var results []domain.SearchResult
	for pos := range entries {
		score, fields := s.matchEntry(searchType, pq, &entries[pos])
		if score <= 0 {
			continue
		}
		results = append(results, domain.SearchResult{
			Position:      pos,
			Entry:         entries[pos],
			Score:         score,
			MatchedFields: fields,
		})
	}

	// Strictly descending by score, ties broken by catalog position
	// ascending, so rankings are reproducible.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Position < results[j].Position
	})

	if len(results) > opts.Limit {
		results = results[:opts.Limit]
	}

	logger.Info("Final results: %d", len(results))
	return results, nil
}

// parsedQuery is the per-search analysis shared by all strategies.
type parsedQuery struct {
	lower   string
	tokens  []string
	themes  []string // Concept themes the query maps to
	periods []string // Period labels the query names directly
}

func (s *SearchService) parseQuery(query string) *parsedQuery {
	pq := &parsedQuery{
		lower:  strings.ToLower(query),
		tokens: tokenize(query),
		themes: s.vocab.ThemesForText(query),
	}

	seen := make(map[string]bool)
	addPeriod := func(term string) {
		if label, ok := s.vocab.PeriodFor(term); ok && !seen[label] {
			seen[label] = true
			pq.periods = append(pq.periods, label)
		}
	}
	addPeriod(pq.lower)
	for _, token := range pq.tokens {
		addPeriod(token)
	}

	logger.Debug("Query analysis: tokens=%v, themes=%v, periods=%v",
		pq.tokens, pq.themes, pq.periods)
	return pq
}

// matchEntry dispatches to the closed set of strategies.
func (s *SearchService) matchEntry(
	searchType domain.SearchType, pq *parsedQuery, entry *domain.Entry,
) (float64, []string) {
	switch searchType {
	case domain.SearchTypeKeyword:
		return matchKeyword(pq, entry)
	case domain.SearchTypeConceptual:
		return matchConceptual(pq, entry)
	case domain.SearchTypeFuzzy:
		return matchFuzzy(pq, entry)
	default:
		return matchComprehensive(pq, entry)
	}
}

// matchKeyword performs case-insensitive substring matching of query
// tokens against author, title, themes, and notes. The score counts
// distinct matched fields, weighted by field.
func matchKeyword(pq *parsedQuery, entry *domain.Entry) (float64, []string) {
	tokens := pq.tokens
	if len(tokens) == 0 {
		tokens = []string{pq.lower}
	}

	var score float64
	var fields []string

	if fieldMatches(entry.Author, tokens) {
		score += weightAuthor
		fields = append(fields, "author")
	}
	if fieldMatches(entry.Title, tokens) {
		score += weightTitle
		fields = append(fields, "title")
	}
	for _, theme := range entry.Themes {
		if fieldMatches(theme, tokens) {
			score += weightThemes
			fields = append(fields, "themes")
			break
		}
	}
	if fieldMatches(entry.Notes, tokens) {
		score += weightNotes
		fields = append(fields, "notes")
	}

	return score, fields
}

// fieldMatches reports whether any token occurs in the field.
func fieldMatches(field string, tokens []string) bool {
	if field == "" {
		return false
	}
	lower := strings.ToLower(field)
	for _, token := range tokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

// matchConceptual matches through the theme vocabulary: the entry hits
// when its themes intersect the query's mapped concepts, or when its
// period matches a period the query names. The score is the
// intersection size normalised by the entry's theme-set size.
func matchConceptual(pq *parsedQuery, entry *domain.Entry) (float64, []string) {
	var score float64
	var fields []string

	if len(entry.Themes) > 0 && len(pq.themes) > 0 {
		mapped := make(map[string]bool, len(pq.themes))
		for _, theme := range pq.themes {
			mapped[strings.ToLower(theme)] = true
		}

		intersection := 0
		for _, theme := range entry.Themes {
			if mapped[strings.ToLower(theme)] {
				intersection++
			}
		}
		if intersection > 0 {
			score = float64(intersection) / float64(len(entry.Themes))
			fields = append(fields, "themes")
		}
	}

	for _, period := range pq.periods {
		if strings.EqualFold(entry.Period, period) {
			score += 0.5
			fields = append(fields, "period")
			break
		}
	}

	return score, fields
}

// matchFuzzy accepts approximate matches of the query against author
// and title, whole-field and token against token, so misspellings and
// partial names still hit. The score is the best similarity found.
func matchFuzzy(pq *parsedQuery, entry *domain.Entry) (float64, []string) {
	var score float64
	var fields []string

	if sim := bestSimilarity(pq, entry.Author); sim >= fuzzyThreshold {
		score = sim
		fields = append(fields, "author")
	}
	if sim := bestSimilarity(pq, entry.Title); sim >= fuzzyThreshold {
		if sim > score {
			score = sim
		}
		fields = append(fields, "title")
	}

	return score, fields
}

// bestSimilarity compares the query to a field, whole and tokenwise.
func bestSimilarity(pq *parsedQuery, field string) float64 {
	if field == "" {
		return 0
	}
	lower := strings.ToLower(field)

	best := similarity(pq.lower, lower)
	fieldTokens := strings.Fields(lower)
	for _, qt := range pq.tokens {
		for _, ft := range fieldTokens {
			if sim := similarity(qt, ft); sim > best {
				best = sim
			}
		}
	}
	return best
}

// matchComprehensive blends all three strategies as a weighted sum and
// merges their matched fields.
func matchComprehensive(pq *parsedQuery, entry *domain.Entry) (float64, []string) {
	kwScore, kwFields := matchKeyword(pq, entry)
	coScore, coFields := matchConceptual(pq, entry)
	fzScore, fzFields := matchFuzzy(pq, entry)

	score := blendKeyword*kwScore + blendConceptual*coScore + blendFuzzy*fzScore
	if score <= 0 {
		return 0, nil
	}

	return score, mergeFields(kwFields, coFields, fzFields)
}

// mergeFields deduplicates matched fields preserving first appearance.
func mergeFields(lists ...[]string) []string {
	seen := make(map[string]bool)
	var merged []string
	for _, list := range lists {
		for _, field := range list {
			if !seen[field] {
				seen[field] = true
				merged = append(merged, field)
			}
		}
	}
	return merged
}
