// Package ingestion prepares plain resume text for analysis. Binary formats
// (PDF, DOC) are an external collaborator's problem; this package only ever
// sees the extracted string.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	spaceRuns = regexp.MustCompile(`[ \t]+`)
	blankRuns = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes line endings, collapses space runs within lines, and
// reduces consecutive blank lines to at most two, preserving the line
// structure section detection relies on.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, strings.TrimSpace(spaceRuns.ReplaceAllString(line, " ")))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRuns.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// ReadResume loads a plain-text resume file and cleans it for analysis.
func ReadResume(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file %s: %w", path, err)
	}
	return CleanText(string(content)), nil
}
