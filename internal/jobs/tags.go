package jobs

import (
	"strings"

	"github.com/jonathan/intern-match/internal/lexicon"
	"github.com/jonathan/intern-match/internal/types"
)

// DetectLevel scans the posting text for level keywords, preferring the most
// senior band with a hit. The second return reports whether any keyword
// matched at all.
func DetectLevel(normalized string) (types.ExperienceLevel, bool) {
	for _, level := range lexicon.JobLevels() {
		for _, keyword := range lexicon.LevelKeywords(level) {
			if lexicon.HasKeyword(normalized, keyword) {
				return level, true
			}
		}
	}
	return types.LevelEntry, false
}

// DetectJobTypes tags a posting with every job-type label whose trigger
// phrases occur in the text. A posting may carry multiple types.
func DetectJobTypes(normalized string) []string {
	tags := []string{}
	for _, jobType := range lexicon.JobTypes() {
		for _, keyword := range lexicon.JobTypeKeywords(jobType) {
			if lexicon.HasKeyword(normalized, keyword) {
				tags = append(tags, jobType)
				break
			}
		}
	}
	return tags
}

// DetectSectors tags a posting with every sector whose trigger phrases occur
// in the text.
func DetectSectors(normalized string) []string {
	sectors := []string{}
	for _, sector := range lexicon.Sectors() {
		for _, keyword := range lexicon.SectorKeywords(sector) {
			if lexicon.HasKeyword(normalized, keyword) {
				sectors = append(sectors, sector)
				break
			}
		}
	}
	return sectors
}

func detectRemote(normalized string) bool {
	for _, phrase := range []string{"remote", "work from home", "distributed team", "anywhere"} {
		if strings.Contains(normalized, phrase) {
			return true
		}
	}
	return false
}

func detectStipend(normalized string) bool {
	for _, phrase := range []string{"stipend", "paid internship", "salary", "compensation", "per month", "per hour"} {
		if strings.Contains(normalized, phrase) {
			return true
		}
	}
	return false
}
