package resume

import (
	"strings"

	"github.com/jonathan/intern-match/internal/lexicon"
)

// maxHeaderLength guards against body lines that merely start with a header
// word; real section headers are short.
const maxHeaderLength = 40

// ExtractSection returns the non-empty lines between the named section's
// header and the next recognized header of any section. A missing section is
// an empty list, not an error.
func ExtractSection(text, section string) []string {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if matchesHeader(line, section) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return []string{}
	}

	entries := []string{}
	for _, line := range lines[start:] {
		if isAnyHeader(line) {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			entries = append(entries, trimmed)
		}
	}
	return entries
}

// matchesHeader reports whether a line is a header for the given section,
// comparing case-insensitively against the lexicon's header synonyms.
func matchesHeader(line, section string) bool {
	candidate := normalizeHeader(line)
	if candidate == "" || len(candidate) > maxHeaderLength {
		return false
	}
	for _, synonym := range lexicon.SectionHeaders(section) {
		if candidate == synonym {
			return true
		}
	}
	return false
}

func isAnyHeader(line string) bool {
	for _, section := range []string{"experience", "education", "skills"} {
		if matchesHeader(line, section) {
			return true
		}
	}
	return false
}

func normalizeHeader(line string) string {
	trimmed := strings.TrimSpace(strings.ToLower(line))
	trimmed = strings.TrimRight(trimmed, ":")
	return strings.TrimSpace(trimmed)
}
