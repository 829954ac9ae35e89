// Package main provides the intern-match CLI: resume analysis, job catalog
// analysis, resume-to-catalog matching, and catalog search.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "intern_match",
	Short: "Internship discovery matching engine",
	Long:  "intern-match analyzes resumes and job postings, produces ranked explainable matches, and searches job catalogs with free-text queries.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
