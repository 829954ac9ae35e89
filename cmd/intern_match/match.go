package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/intern-match/internal/catalog"
	"github.com/jonathan/intern-match/internal/config"
	"github.com/jonathan/intern-match/internal/ingestion"
	"github.com/jonathan/intern-match/internal/jobs"
	"github.com/jonathan/intern-match/internal/matching"
	"github.com/jonathan/intern-match/internal/observability"
	"github.com/jonathan/intern-match/internal/resume"
	"github.com/jonathan/intern-match/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank catalog jobs against one or more resumes",
	Long:  "Analyzes each resume and the job catalog, then produces a ranked, explained match list per resume. Multiple resumes are scored concurrently against the same analyzed corpus.",
	RunE:  runMatch,
}

var (
	matchResumes []string
	matchCatalog string
	matchConfig  string
	matchOutput  string
	matchVerbose bool
)

// resumeMatches pairs one resume file with its ranked matches.
type resumeMatches struct {
	Resume  string              `json:"resume"`
	Matches []types.MatchResult `json:"matches"`
}

func init() {
	matchCmd.Flags().StringArrayVarP(&matchResumes, "resume", "r", nil, "Path to plain-text resume file (repeatable, at least one required)")
	matchCmd.Flags().StringVarP(&matchCatalog, "catalog", "c", "", "Path to job catalog JSON file (required)")
	matchCmd.Flags().StringVarP(&matchConfig, "config", "f", "", "Path to optional matcher config JSON file")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output matches JSON file (required)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print top matches to stdout")

	if err := matchCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("catalog"); err != nil {
		panic(fmt.Sprintf("failed to mark catalog flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	matchCfg := matching.DefaultConfig()
	if matchConfig != "" {
		fileCfg, err := config.Load(matchConfig)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		matchCfg = fileCfg.MatchConfig()
	}

	cat, err := catalog.Load(matchCatalog)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	profiles, _, _ := jobs.AnalyzeCorpus(cat.Jobs)

	// The core is pure, so resumes can be scored in parallel against the
	// shared corpus analysis.
	results := make([]resumeMatches, len(matchResumes))
	var g errgroup.Group
	for i, path := range matchResumes {
		i, path := i, path
		g.Go(func() error {
			text, err := ingestion.ReadResume(path)
			if err != nil {
				return fmt.Errorf("failed to load resume %s: %w", path, err)
			}
			profile := resume.Analyze(text)
			matches, err := matching.Match(profile, profiles, matchCfg)
			if err != nil {
				return fmt.Errorf("failed to match resume %s: %w", path, err)
			}
			results[i] = resumeMatches{Resume: path, Matches: matches}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := writeJSON(matchOutput, results); err != nil {
		return err
	}

	if matchVerbose {
		printer := observability.NewPrinter(os.Stdout)
		for _, r := range results {
			printer.PrintMatchResults(r.Matches)
		}
	}
	return nil
}
