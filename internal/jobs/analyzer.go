// Package jobs extracts structured JobProfiles from job postings, singly or
// as a corpus. Corpus analysis is two-pass so term weights reflect rarity
// across the whole catalog; standalone analysis uses a neutral IDF of 1.
package jobs

import (
	"strings"
	"time"

	"github.com/jonathan/intern-match/internal/resume"
	"github.com/jonathan/intern-match/internal/tokenizing"
	"github.com/jonathan/intern-match/internal/types"
)

// Analyze produces a JobProfile for a single posting outside the corpus
// path, with a neutral IDF of 1 for every term.
func Analyze(posting types.JobPosting) *types.JobProfile {
	return AnalyzeAt(posting, time.Now())
}

// AnalyzeAt is Analyze with an injectable reference time for deterministic
// date-range resolution.
func AnalyzeAt(posting types.JobPosting, now time.Time) *types.JobProfile {
	return analyzeWithIDF(posting, now, nil)
}

// analyzeWithIDF builds the full profile. A nil idf table means every term
// weighs its raw frequency.
func analyzeWithIDF(posting types.JobPosting, now time.Time, idf IDF) *types.JobProfile {
	doc := postingDocument(posting)
	normalized := tokenizing.Normalize(doc)
	tokens := tokenizing.Tokenize(doc, tokenizing.DefaultMaxNgram)

	skills := resume.ExtractSkills(normalized, tokens)
	required, preferred := ClassifyRequirements(normalized, skills)

	years := resume.EstimateYears(doc, now)
	level, levelStated := DetectLevel(normalized)
	if !levelStated {
		level = resume.LevelForYears(years)
	}

	profile := &types.JobProfile{
		ID:              posting.ID,
		Title:           posting.Title,
		Organization:    posting.Organization,
		Location:        posting.Location,
		RequiredSkills:  required,
		PreferredSkills: preferred,
		AllSkills:       allSkills(skills, posting.Keywords),
		ExperienceLevel: level,
		YearsRequired:   years,
		JobTypes:        DetectJobTypes(normalized),
		Sectors:         DetectSectors(normalized),
		TopKeywords:     resume.TopKeywords(doc, 20),
		TermWeights:     termWeights(doc, idf),
		RawDescription:  posting.Description,
	}

	// Explicit posting flags merge into the text-derived tags, never the
	// other way around.
	profile.IsRemote = posting.IsRemote || detectRemote(normalized)
	profile.IsBeginner = posting.IsBeginner || level == types.LevelEntry
	profile.HasStipend = posting.HasStipend || detectStipend(normalized)

	return profile
}

// postingDocument concatenates every textual facet of a posting into one
// analyzable document.
func postingDocument(posting types.JobPosting) string {
	parts := []string{posting.Title, posting.Organization, posting.Description}
	parts = append(parts, posting.Requirements...)
	parts = append(parts, posting.Responsibilities...)
	parts = append(parts, posting.Keywords...)
	parts = append(parts, posting.Location)

	nonEmpty := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "\n")
}

// allSkills deduplicates the union of extracted skill names and the
// posting's explicit keyword tags, preserving extraction order.
func allSkills(skills []types.Skill, keywords []string) []string {
	seen := make(map[string]bool, len(skills)+len(keywords))
	all := make([]string, 0, len(skills)+len(keywords))
	for _, s := range skills {
		if !seen[s.Name] {
			seen[s.Name] = true
			all = append(all, s.Name)
		}
	}
	for _, k := range keywords {
		normalized := tokenizing.Normalize(k)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		all = append(all, normalized)
	}
	return all
}

// termWeights builds the posting's sparse term vector: term frequency scaled
// by corpus IDF, or raw frequency when no corpus table exists.
func termWeights(doc string, idf IDF) map[string]float64 {
	freq := tokenizing.TermFrequencies(doc)
	weights := make(map[string]float64, len(freq))
	for term, count := range freq {
		weights[term] = float64(count) * idf.Weight(term)
	}
	return weights
}
