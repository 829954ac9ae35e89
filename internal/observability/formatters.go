// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/intern-match/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeProfile outputs a human-readable summary of an analyzed resume.
func (p *Printer) PrintResumeProfile(profile *types.ResumeProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Level:    %s (%d years)\n", profile.ExperienceLevel, profile.TotalYearsExperience))
	sb.WriteString(fmt.Sprintf("Skills:   %d extracted\n", len(profile.Skills)))

	count := min(len(profile.Skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		skill := profile.Skills[i]
		sb.WriteString(fmt.Sprintf("  • %s (%s, %.2f)\n", skill.Name, skill.Category, skill.Confidence))
	}
	if len(profile.Skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
	}

	if len(profile.TopKeywords) > 0 {
		keywords := strings.Join(profile.TopKeywords, ", ")
		if len(keywords) > 45 {
			keywords = keywords[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Keywords: %s", keywords))
	}

	p.printBox("RESUME PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResults outputs the top ranked matches with scores and highlights.
func (p *Printer) PrintMatchResults(results []types.MatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total matches: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s - %s\n", result.Rank, result.Job.Title, result.Job.Organization))
		sb.WriteString(fmt.Sprintf("    Overall %d (skill %d, exp %d, kw %d, sector %d)\n",
			result.Score.Overall, result.Score.Skill, result.Score.Experience,
			result.Score.Keyword, result.Score.Sector))
		if len(result.Explanation.Highlights) > 0 {
			sb.WriteString(fmt.Sprintf("    %s\n", result.Explanation.Highlights[0]))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(results)-maxItemsToShow))
	}

	p.printBox("TOP MATCHES", sb.String())
}

// PrintSearchResults outputs scored search hits.
func (p *Printer) PrintSearchResults(results []types.SearchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		sb.WriteString(fmt.Sprintf("%.2f  %s - %s\n", result.Score, result.Job.Title, result.Job.Organization))
	}
	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more hits", len(results)-maxItemsToShow))
	}

	p.printBox("SEARCH RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCorpusStats outputs the descriptive corpus summary.
func (p *Printer) PrintCorpusStats(stats types.CorpusStats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Postings:        %d\n", stats.PostingCount))
	sb.WriteString(fmt.Sprintf("Avg skills/post: %.1f\n", stats.AvgSkillsPerPosting))
	if len(stats.TopSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Top skills:      %s\n", strings.Join(stats.TopSkills, ", ")))
	}
	if len(stats.TopSectors) > 0 {
		sb.WriteString(fmt.Sprintf("Top sectors:     %s", strings.Join(stats.TopSectors, ", ")))
	}

	p.printBox("CORPUS STATS", strings.TrimSuffix(sb.String(), "\n"))
}
