package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/folio-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/folio-cli/internal/core/domain"
)

func TestLoadOrInitializeSeedsEmptyStore(t *testing.T) {
	store := memory.NewCatalogStore()
	persistence := &recordingPersistence{}
	svc := NewCatalogService(store, persistence)

	count, err := svc.LoadOrInitialize(context.Background())
	require.NoError(t, err)
	assert.Greater(t, count, 0)

	// Seeded entries are fully populated and indexed.
	entries, err := store.EntriesBy(context.Background(), domain.IndexAuthor, "Plato")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "The Republic", entries[0].Title)
	assert.Equal(t, "Ancient", entries[0].Period)
	assert.NotEmpty(t, entries[0].Themes)
}

func TestLoadOrInitializePrefersPersistedEntries(t *testing.T) {
	persistence := &recordingPersistence{entries: []domain.Entry{
		{Author: "Hannah Arendt", Title: "The Human Condition", Source: "import"},
	}}
	store := memory.NewCatalogStore()
	svc := NewCatalogService(store, persistence)

	count, err := svc.LoadOrInitialize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	entry, err := store.Get(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "Hannah Arendt", entry.Author)
}

func TestSaveWritesSnapshot(t *testing.T) {
	store := memory.NewCatalogStoreFrom([]domain.Entry{
		{Author: "Plato", Title: "The Republic", Source: "seed"},
		{Author: "Aristotle", Title: "Poetics", Source: "seed"},
	})
	persistence := &recordingPersistence{}
	svc := NewCatalogService(store, persistence)

	require.NoError(t, svc.Save(context.Background()))
	assert.Equal(t, 1, persistence.calls)
	require.Len(t, persistence.entries, 2)
	assert.Equal(t, "Plato", persistence.entries[0].Author)
}

func TestCatalogServiceDelegatesReads(t *testing.T) {
	store := memory.NewCatalogStoreFrom([]domain.Entry{
		{Author: "Plato", Title: "The Republic", Period: "Ancient", Source: "seed"},
		{Author: "Aristotle", Title: "Poetics", Period: "Ancient", Source: "seed"},
	})
	svc := NewCatalogService(store, nil)
	ctx := context.Background()

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalEntries)
	assert.Equal(t, 2, stats.TotalAuthors)

	keys, err := svc.Keys(ctx, domain.IndexAuthor)
	require.NoError(t, err)
	assert.Equal(t, []string{"Aristotle", "Plato"}, keys)

	_, err = svc.EntriesBy(ctx, domain.IndexAuthor, "Nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSeedEntriesParse(t *testing.T) {
	entries, err := seedEntries()
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	for _, entry := range entries {
		assert.False(t, entry.IsBlank(), "seed entry %q is blank", entry.Title)
		assert.NotEmpty(t, entry.Period, "seed entry %q has no period", entry.Title)
		assert.Equal(t, "seed", entry.Source)
	}
}
