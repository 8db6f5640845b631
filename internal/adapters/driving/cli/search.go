package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/folio-cli/internal/core/domain"
)

var (
	searchType  string
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog",
	Long: `Searches catalog entries with the selected strategy.
Keyword matches query words against author, title, themes, and notes;
conceptual maps the query through the theme vocabulary; fuzzy tolerates
misspellings; comprehensive blends all three.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchType, "type", "t", "comprehensive",
		"search strategy (keyword, conceptual, fuzzy, comprehensive)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}

	opts := domain.SearchOptions{
		Type:  domain.SearchType(searchType),
		Limit: searchLimit,
	}

	results, err := searchService.Search(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return printJSON(cmd, results)
	}
	return printSearchResults(cmd, results)
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func printSearchResults(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		entry := &results[i].Entry
		cmd.Printf("[%d] %s — %s", i+1, entry.Author, entry.Title)
		if entry.Date != "" {
			cmd.Printf(" (%s)", entry.Date)
		}
		cmd.Println()
		if len(entry.Themes) > 0 {
			cmd.Printf("    Themes: %s\n", strings.Join(entry.Themes, ", "))
		}
		cmd.Printf("    Score: %.2f", results[i].Score)
		if len(results[i].MatchedFields) > 0 {
			cmd.Printf("  Matched: %s", strings.Join(results[i].MatchedFields, ", "))
		}
		cmd.Println()
		cmd.Println()
	}
	return nil
}
