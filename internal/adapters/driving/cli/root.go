// Package cli wires the core services into the folio command tree.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/folio-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/folio-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/folio-cli/internal/core/ports/driven"
	"github.com/custodia-labs/folio-cli/internal/core/ports/driving"
	"github.com/custodia-labs/folio-cli/internal/core/services"
	"github.com/custodia-labs/folio-cli/internal/exporters"
	"github.com/custodia-labs/folio-cli/internal/extractors"
	"github.com/custodia-labs/folio-cli/internal/extractors/docx"
	"github.com/custodia-labs/folio-cli/internal/extractors/markdown"
	"github.com/custodia-labs/folio-cli/internal/extractors/pdf"
	"github.com/custodia-labs/folio-cli/internal/extractors/plaintext"
	"github.com/custodia-labs/folio-cli/internal/extractors/tabular"
	"github.com/custodia-labs/folio-cli/internal/extractors/xlsx"
	"github.com/custodia-labs/folio-cli/internal/logger"
)

var (
	verbose bool
	dataDir string

	searchService  driving.SearchService
	ingestService  driving.IngestService
	catalogService driving.CatalogService
	exportService  driving.ExportService

	persistence driven.CatalogPersistence
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Bibliographic catalog engine",
	Long: `Folio maintains an append-only catalog of bibliographic entries.
Documents are ingested through format-specific extractors, entries are
deduplicated and classified against a theme vocabulary, and the catalog
can be searched with keyword, conceptual, fuzzy, or comprehensive
strategies.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(*cobra.Command, []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.folio/data)")
}

// Execute runs the root command.
func Execute() error {
	defer closeServices()
	return rootCmd.Execute()
}

// ensureServices builds the real service graph on first use. Tests
// inject their own services beforehand, which skips construction.
func ensureServices(cmd *cobra.Command) error {
	if searchService != nil {
		return nil
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("open catalog store: %w", err)
	}
	persistence = store
	logger.Debug("Catalog database: %s", store.Path())

	catalog := memory.NewCatalogStore()
	catalogSvc := services.NewCatalogService(catalog, persistence)
	catalogService = catalogSvc

	count, err := catalogSvc.LoadOrInitialize(cmd.Context())
	if err != nil {
		return err
	}
	logger.Debug("Catalog ready with %d entries", count)

	registry := extractors.NewRegistry(
		tabular.New(),
		xlsx.New(),
		docx.New(),
		pdf.New(),
		markdown.New(),
		plaintext.New(),
	)

	searchService = services.NewSearchService(catalog, nil)
	ingestService = services.NewIngestService(registry, catalog, persistence, nil)
	exportService = services.NewExportService(exportDirectory(),
		exporters.NewCSV(),
		exporters.NewJSON(),
		exporters.NewBibTeX(),
		exporters.NewMarkdown(),
		exporters.NewXLSX(),
	)

	return nil
}

func closeServices() {
	if persistence != nil {
		if err := persistence.Close(); err != nil {
			logger.Warn("Closing catalog store: %v", err)
		}
		persistence = nil
	}
}

// exportDirectory keeps exports next to the catalog data.
func exportDirectory() string {
	base := dataDir
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "exports"
		}
		base = filepath.Join(home, ".folio")
	}
	return filepath.Join(base, "exports")
}
