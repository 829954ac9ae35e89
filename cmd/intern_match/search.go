package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/intern-match/internal/catalog"
	"github.com/jonathan/intern-match/internal/observability"
	"github.com/jonathan/intern-match/internal/searching"
	"github.com/jonathan/intern-match/internal/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search a job catalog with a free-text query",
	Long:  "Parses the query for filters (remote, beginner, paid, sector, location), expands the residual terms with synonyms, and ranks postings by field-weighted score. An empty query lists the filtered catalog.",
	RunE:  runSearch,
}

var (
	searchCatalog string
	searchQuery   string
	searchLimit   int
	searchOutput  string
	searchVerbose bool
)

// searchOutputDoc is the JSON shape the search command writes.
type searchOutputDoc struct {
	Query   types.ParsedQuery    `json:"query"`
	Results []types.SearchResult `json:"results"`
}

func init() {
	searchCmd.Flags().StringVarP(&searchCatalog, "catalog", "c", "", "Path to job catalog JSON file (required)")
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Free-text query; empty browses the whole catalog")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", searching.DefaultLimit, "Maximum number of results")
	searchCmd.Flags().StringVarP(&searchOutput, "out", "o", "", "Path to output results JSON file (required)")
	searchCmd.Flags().BoolVarP(&searchVerbose, "verbose", "v", false, "Print results to stdout")

	if err := searchCmd.MarkFlagRequired("catalog"); err != nil {
		panic(fmt.Sprintf("failed to mark catalog flag as required: %v", err))
	}
	if err := searchCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, _ []string) error {
	cat, err := catalog.Load(searchCatalog)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	parsed := searching.ParseQuery(searchQuery)
	results := searching.Search(strings.Join(parsed.Terms, " "), cat.Jobs, parsed.Filters, searchLimit)

	if err := writeJSON(searchOutput, searchOutputDoc{Query: parsed, Results: results}); err != nil {
		return err
	}

	if searchVerbose {
		observability.NewPrinter(os.Stdout).PrintSearchResults(results)
	}
	return nil
}
