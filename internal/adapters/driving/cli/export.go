package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
)

var (
	exportFormat string
	exportBy     string
	exportKey    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export catalog entries to a file",
	Long: `Writes catalog entries to a file in the chosen format. The whole
catalog is exported unless an index filter narrows the selection.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "output format")
	exportCmd.Flags().StringVar(&exportBy, "by", "", "index to filter on (author, theme, period)")
	exportCmd.Flags().StringVar(&exportKey, "key", "", "index key to filter on")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	entries, err := entriesToExport(cmd)
	if err != nil {
		return err
	}

	path, err := exportService.Export(cmd.Context(), entries, exportFormat)
	if err != nil {
		return fmt.Errorf("export failed (formats: %s): %w",
			strings.Join(exportService.Formats(), ", "), err)
	}

	cmd.Printf("Exported %d entries to %s\n", len(entries), path)
	return nil
}

func entriesToExport(cmd *cobra.Command) ([]domain.Entry, error) {
	ctx := cmd.Context()

	if exportBy == "" && exportKey == "" {
		entries, err := catalogService.Entries(ctx)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		return entries, nil
	}

	if exportBy == "" || exportKey == "" {
		return nil, fmt.Errorf("--by and --key must be used together: %w", domain.ErrInvalidInput)
	}
	entries, err := catalogService.EntriesBy(ctx, domain.IndexName(exportBy), exportKey)
	if err != nil {
		return nil, fmt.Errorf("filter %s %q: %w", exportBy, exportKey, err)
	}
	return entries, nil
}
