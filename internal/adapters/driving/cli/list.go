package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
)

var (
	listBy   string
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list [key]",
	Short: "Browse the catalog by index",
	Long: `Lists the keys of an index, or the entries filed under one key.
Without an argument the index keys are listed; with an argument the
entries under that key are shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listBy, "by", "author", "index to browse (author, theme, period)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	index := domain.IndexName(listBy)

	if len(args) == 0 {
		keys, err := catalogService.Keys(cmd.Context(), index)
		if err != nil {
			return fmt.Errorf("list %s keys: %w", listBy, err)
		}
		if listJSON {
			return printJSON(cmd, keys)
		}
		for _, key := range keys {
			cmd.Println(key)
		}
		return nil
	}

	entries, err := catalogService.EntriesBy(cmd.Context(), index, args[0])
	if err != nil {
		return fmt.Errorf("list %s %q: %w", listBy, args[0], err)
	}
	if listJSON {
		return printJSON(cmd, entries)
	}
	for i := range entries {
		entry := &entries[i]
		cmd.Printf("%s — %s", entry.Author, entry.Title)
		if entry.Date != "" {
			cmd.Printf(" (%s)", entry.Date)
		}
		cmd.Println()
	}
	return nil
}
