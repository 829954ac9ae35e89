package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/intern-match/internal/catalog"
	"github.com/jonathan/intern-match/internal/jobs"
	"github.com/jonathan/intern-match/internal/observability"
	"github.com/jonathan/intern-match/internal/types"
)

var analyzeJobsCmd = &cobra.Command{
	Use:   "analyze-jobs",
	Short: "Analyze a job catalog into profiles with corpus-wide term weights",
	Long:  "Runs the two-pass corpus analysis over a job catalog JSON file, producing JobProfiles whose term weights reflect rarity across the whole catalog, plus the shared IDF table and descriptive corpus stats.",
	RunE:  runAnalyzeJobs,
}

var (
	analyzeJobsCatalog string
	analyzeJobsOutput  string
	analyzeJobsVerbose bool
)

// corpusOutput is the JSON shape the analyze-jobs command writes.
type corpusOutput struct {
	Profiles []types.JobProfile `json:"profiles"`
	IDF      jobs.IDF           `json:"idf"`
	Stats    types.CorpusStats  `json:"stats"`
}

func init() {
	analyzeJobsCmd.Flags().StringVarP(&analyzeJobsCatalog, "catalog", "c", "", "Path to job catalog JSON file (required)")
	analyzeJobsCmd.Flags().StringVarP(&analyzeJobsOutput, "out", "o", "", "Path to output corpus analysis JSON file (required)")
	analyzeJobsCmd.Flags().BoolVarP(&analyzeJobsVerbose, "verbose", "v", false, "Print corpus stats to stdout")

	if err := analyzeJobsCmd.MarkFlagRequired("catalog"); err != nil {
		panic(fmt.Sprintf("failed to mark catalog flag as required: %v", err))
	}
	if err := analyzeJobsCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeJobsCmd)
}

func runAnalyzeJobs(_ *cobra.Command, _ []string) error {
	cat, err := catalog.Load(analyzeJobsCatalog)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	profiles, idf, stats := jobs.AnalyzeCorpus(cat.Jobs)

	output := corpusOutput{Profiles: profiles, IDF: idf, Stats: stats}
	if err := writeJSON(analyzeJobsOutput, output); err != nil {
		return err
	}

	if analyzeJobsVerbose {
		observability.NewPrinter(os.Stdout).PrintCorpusStats(stats)
	}
	return nil
}
