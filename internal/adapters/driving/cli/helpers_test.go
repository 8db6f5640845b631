package cli

import (
	"bytes"
	"testing"

	"github.com/custodia-labs/folio-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/folio-cli/internal/core/domain"
	"github.com/custodia-labs/folio-cli/internal/core/services"
	"github.com/custodia-labs/folio-cli/internal/exporters"
	"github.com/custodia-labs/folio-cli/internal/extractors"
	"github.com/custodia-labs/folio-cli/internal/extractors/plaintext"
	"github.com/custodia-labs/folio-cli/internal/extractors/tabular"
)

// setupTestServices wires in-memory services so commands run without
// touching the real data directory. The cleanup restores the package
// state for the next test.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	store := memory.NewCatalogStoreFrom([]domain.Entry{
		{
			Author: "Plato",
			Title:  "The Republic",
			Date:   "c. 375 BCE",
			Period: "Ancient",
			Themes: []string{"justice", "political philosophy"},
			Source: "seed",
		},
		{
			Author: "David Hume",
			Title:  "A Treatise of Human Nature",
			Date:   "1739",
			Period: "Early Modern",
			Themes: []string{"epistemology"},
			Source: "seed",
		},
	})

	registry := extractors.NewRegistry(tabular.New(), plaintext.New())

	searchService = services.NewSearchService(store, nil)
	catalogService = services.NewCatalogService(store, nil)
	ingestService = services.NewIngestService(registry, store, nil, nil)
	exportService = services.NewExportService(t.TempDir(), exporters.NewCSV(), exporters.NewJSON())

	return func() {
		searchService = nil
		catalogService = nil
		ingestService = nil
		exportService = nil

		// Flags persist between executions; restore the defaults.
		searchType = "comprehensive"
		searchLimit = 10
		searchJSON = false
		ingestJSON = false
		statsJSON = false
		listBy = "author"
		listJSON = false
		exportFormat = "csv"
		exportBy = ""
		exportKey = ""
	}
}

// executeCommand runs the root command with args and captures output.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
