package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/intern-match/internal/ingestion"
	"github.com/jonathan/intern-match/internal/observability"
	"github.com/jonathan/intern-match/internal/resume"
)

var analyzeResumeCmd = &cobra.Command{
	Use:   "analyze-resume",
	Short: "Extract a structured profile from a plain-text resume",
	Long:  "Analyzes a plain-text resume into a ResumeProfile JSON: recognized skills with confidence, experience years and level, section snippets, and top keywords.",
	RunE:  runAnalyzeResume,
}

var (
	analyzeResumeInput   string
	analyzeResumeOutput  string
	analyzeResumeVerbose bool
)

func init() {
	analyzeResumeCmd.Flags().StringVarP(&analyzeResumeInput, "resume", "r", "", "Path to plain-text resume file (required)")
	analyzeResumeCmd.Flags().StringVarP(&analyzeResumeOutput, "out", "o", "", "Path to output ResumeProfile JSON file (required)")
	analyzeResumeCmd.Flags().BoolVarP(&analyzeResumeVerbose, "verbose", "v", false, "Print a profile summary to stdout")

	if err := analyzeResumeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := analyzeResumeCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeResumeCmd)
}

func runAnalyzeResume(_ *cobra.Command, _ []string) error {
	text, err := ingestion.ReadResume(analyzeResumeInput)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	profile := resume.Analyze(text)

	if err := writeJSON(analyzeResumeOutput, profile); err != nil {
		return err
	}

	if analyzeResumeVerbose {
		observability.NewPrinter(os.Stdout).PrintResumeProfile(profile)
	}
	return nil
}
