package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
)

var ingestJSON bool

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Ingest a document into the catalog",
	Long: `Extracts bibliographic entries from a document, drops duplicates,
classifies themes and periods, flags quality issues, and commits the
survivors to the catalog. Supported formats: CSV, TSV, XLSX, DOCX, PDF,
Markdown, and plain text.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	report, err := ingestService.ProcessDocument(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	if ingestJSON {
		return printJSON(cmd, report)
	}
	printIngestReport(cmd, report)
	return nil
}

func printIngestReport(cmd *cobra.Command, report *domain.IngestReport) {
	cmd.Printf("Ingested %s (run %s)\n", report.Source, report.RunID)
	cmd.Printf("  Entries added:    %d\n", report.EntriesAdded)
	cmd.Printf("  Duplicates found: %d\n", report.DuplicatesFound)
	if len(report.ThemesDetected) > 0 {
		cmd.Printf("  Themes detected:  %s\n", strings.Join(report.ThemesDetected, ", "))
	}
	if report.DateRange != nil {
		cmd.Printf("  Date range:       %d to %d\n", report.DateRange.Min, report.DateRange.Max)
	}
	if len(report.QualityIssues) > 0 {
		cmd.Printf("  Quality issues (%d):\n", len(report.QualityIssues))
		for _, issue := range report.QualityIssues {
			cmd.Printf("    - %s\n", issue)
		}
	}
}
