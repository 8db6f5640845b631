package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	stats, err := catalogService.Statistics(cmd.Context())
	if err != nil {
		return fmt.Errorf("statistics failed: %w", err)
	}

	if statsJSON {
		return printJSON(cmd, stats)
	}

	cmd.Println("Catalog statistics:")
	cmd.Printf("  Entries: %d\n", stats.TotalEntries)
	cmd.Printf("  Authors: %d\n", stats.TotalAuthors)
	cmd.Printf("  Themes:  %d\n", stats.TotalThemes)
	cmd.Printf("  Sources: %d\n", stats.TotalSources)
	if stats.DateRange != nil {
		cmd.Printf("  Years:   %d to %d\n", stats.DateRange.Min, stats.DateRange.Max)
	}
	return nil
}
