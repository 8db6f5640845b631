package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/folio-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/folio-cli/internal/core/domain"
)

func testCatalog(t *testing.T) *memory.CatalogStore {
	t.Helper()
	return memory.NewCatalogStoreFrom([]domain.Entry{
		{
			Author: "Plato",
			Title:  "The Republic",
			Date:   "c. 375 BCE",
			Period: "Ancient",
			Themes: []string{"justice", "political philosophy", "metaphysics"},
			Notes:  "Dialogue on the just city.",
			Source: "seed",
		},
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
			Author: "John Stuart Mill",
			Title:  "On Liberty",
			Date:   "1859",
			Period: "Modern",
			Themes: []string{"political philosophy", "liberty"},
			Notes:  "Defence of individual liberty.",
			Source: "seed",
		},
	})
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	svc := NewSearchService(testCatalog(t), nil)

	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := svc.Search(context.Background(), query, domain.SearchOptions{Limit: 10})
		assert.ErrorIs(t, err, domain.ErrInvalidQuery, "query %q", query)
	}
}

func TestSearchRejectsBadOptions(t *testing.T) {
	svc := NewSearchService(testCatalog(t), nil)
	ctx := context.Background()

	_, err := svc.Search(ctx, "plato", domain.SearchOptions{Type: "semantic", Limit: 10})
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)

	_, err = svc.Search(ctx, "plato", domain.SearchOptions{Limit: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Search(ctx, "plato", domain.SearchOptions{Limit: domain.MaxSearchResults + 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestKeywordSearchMatchesFields(t *testing.T) {
	svc := NewSearchService(testCatalog(t), nil)

	results, err := svc.Search(context.Background(), "liberty",
		domain.SearchOptions{Type: domain.SearchTypeKeyword, Limit: 10})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "On Liberty", results[0].Entry.Title)
	assert.Contains(t, results[0].MatchedFields, "title")
	assert.Contains(t, results[0].MatchedFields, "themes")
	assert.Greater(t, results[0].Score, 0.0)
}

func TestKeywordSearchIsCaseInsensitive(t *testing.T) {
	svc := NewSearchService(testCatalog(t), nil)

	results, err := svc.Search(context.Background(), "HUME",
		domain.SearchOptions{Type: domain.SearchTypeKeyword, Limit: 10})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "David Hume", results[0].Entry.Author)
	assert.Equal(t, []string{"author"}, results[0].MatchedFields)
}

func TestConceptualSearchMapsConcepts(t *testing.T) {
	svc := NewSearchService(testCatalog(t), nil)

	// "justice" maps to themes including political philosophy, so the
	// Mill entry hits conceptually even though the word never appears.
	results, err := svc.Search(context.Background(), "justice",
		domain.SearchOptions{Type: domain.SearchTypeConceptual, Limit: 10})
	require.NoError(t, err)
	require.Len(t, results, 2)

	titles := []string{results[0].Entry.Title, results[1].Entry.Title}
	assert.Contains(t, titles, "The Republic")
	assert.Contains(t, titles, "On Liberty")
	for _, result := range results {
		assert.Contains(t, result.MatchedFields, "themes")
	}
}

func TestConceptualSearchMatchesPeriodSynonyms(t *testing.T) {
	svc := NewSearchService(testCatalog(t), nil)

	results, err := svc.Search(context.Background(), "enlightenment",
		domain.SearchOptions{Type: domain.SearchTypeConceptual, Limit: 10})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "David Hume", results[0].Entry.Author)
	assert.Contains(t, results[0].MatchedFields, "period")
}

func TestFuzzySearchToleratesTypos(t *testing.T) {
	svc := NewSearchService(testCatalog(t), nil)

	results, err := svc.Search(context.Background(), "plaot",
		domain.SearchOptions{Type: domain.SearchTypeFuzzy, Limit: 10})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Plato", results[0].Entry.Author)
	assert.Contains(t, results[0].MatchedFields, "author")
	assert.GreaterOrEqual(t, results[0].Score, fuzzyThreshold)
}

func TestFuzzySearchIgnoresDistantStrings(t *testing.T) {
	svc := NewSearchService(testCatalog(t), nil)

	results, err := svc.Search(context.Background(), "zzzzqqq",
		domain.SearchOptions{Type: domain.SearchTypeFuzzy, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestComprehensiveSupersetOfKeyword(t *testing.T) {
	svc := NewSearchService(testCatalog(t), nil)
	ctx := context.Background()

	keyword, err := svc.Search(ctx, "liberty",
		domain.SearchOptions{Type: domain.SearchTypeKeyword, Limit: domain.MaxSearchResults})
	require.NoError(t, err)

	comprehensive, err := svc.Search(ctx, "liberty",
		domain.SearchOptions{Type: domain.SearchTypeComprehensive, Limit: domain.MaxSearchResults})
	require.NoError(t, err)

	positions := make(map[int]bool)
	for _, result := range comprehensive {
		positions[result.Position] = true
	}
	for _, result := range keyword {
		assert.True(t, positions[result.Position],
			"keyword hit at position %d missing from comprehensive results", result.Position)
	}
}

func TestSearchDefaultsToComprehensive(t *testing.T) {
	svc := NewSearchService(testCatalog(t), nil)

	results, err := svc.Search(context.Background(), "liberty",
		domain.SearchOptions{Limit: 10})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "On Liberty", results[0].Entry.Title)
}

func TestSearchOrderingIsDeterministic(t *testing.T) {
	store := memory.NewCatalogStoreFrom([]domain.Entry{
		{Author: "Author A", Title: "Liberty One", Source: "s"},
		{Author: "Author B", Title: "Liberty Two", Source: "s"},
		{Author: "Author C", Title: "Liberty Three", Source: "s"},
	})
	svc := NewSearchService(store, nil)

	first, err := svc.Search(context.Background(), "liberty",
		domain.SearchOptions{Type: domain.SearchTypeKeyword, Limit: 10})
	require.NoError(t, err)
	require.Len(t, first, 3)

	// Equal scores fall back to catalog position order.
	for i := 1; i < len(first); i++ {
		if first[i-1].Score == first[i].Score {
			assert.Less(t, first[i-1].Position, first[i].Position)
		}
	}

	second, err := svc.Search(context.Background(), "liberty",
		domain.SearchOptions{Type: domain.SearchTypeKeyword, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSearchHonoursLimit(t *testing.T) {
	store := memory.NewCatalogStore()
	ctx := context.Background()
	for i := 0; i < 25; i++ {
		_, err := store.Append(ctx, domain.Entry{
			Author: "Prolific Author",
			Title:  "Collected Works",
			Source: "s",
		})
		require.NoError(t, err)
	}
	svc := NewSearchService(store, nil)

	results, err := svc.Search(ctx, "prolific",
		domain.SearchOptions{Type: domain.SearchTypeKeyword, Limit: 5})
	require.NoError(t, err)
	assert.Len(t, results, 5)
}
