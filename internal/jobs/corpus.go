package jobs

import (
	"math"
	"sort"
	"time"

	"github.com/jonathan/intern-match/internal/tokenizing"
	"github.com/jonathan/intern-match/internal/types"
)

// IDF maps terms to their inverse document frequency across an analyzed
// corpus: ln(N/(1+df)) + 1. A nil table is the documented neutral fallback
// where every term weighs 1.
type IDF map[string]float64

// Weight returns the IDF for a term. Nil tables and unseen terms weigh 1.
func (idf IDF) Weight(term string) float64 {
	if idf == nil {
		return 1
	}
	if w, ok := idf[term]; ok {
		return w
	}
	return 1
}

// topStatCount is how many leading skills/sectors CorpusStats reports.
const topStatCount = 5

// AnalyzeCorpus analyzes a batch of postings in two passes: pass one builds
// document frequencies and the shared IDF table, pass two produces every
// profile with term weights that reflect rarity across the whole catalog.
func AnalyzeCorpus(postings []types.JobPosting) ([]types.JobProfile, IDF, types.CorpusStats) {
	return AnalyzeCorpusAt(postings, time.Now())
}

// AnalyzeCorpusAt is AnalyzeCorpus with an injectable reference time.
// Re-running it on an unchanged posting list yields identical output.
func AnalyzeCorpusAt(postings []types.JobPosting, now time.Time) ([]types.JobProfile, IDF, types.CorpusStats) {
	idf := buildIDF(postings)

	profiles := make([]types.JobProfile, 0, len(postings))
	for _, posting := range postings {
		profiles = append(profiles, *analyzeWithIDF(posting, now, idf))
	}

	return profiles, idf, corpusStats(profiles)
}

// buildIDF is pass one: document frequency per term, then
// idf(term) = ln(N/(1+df)) + 1.
func buildIDF(postings []types.JobPosting) IDF {
	n := len(postings)
	if n == 0 {
		return IDF{}
	}

	df := make(map[string]int)
	for _, posting := range postings {
		for term := range tokenizing.TermFrequencies(postingDocument(posting)) {
			df[term]++
		}
	}

	idf := make(IDF, len(df))
	for term, count := range df {
		idf[term] = math.Log(float64(n)/float64(1+count)) + 1
	}
	return idf
}

// corpusStats derives the descriptive summary consumed by insights output.
// Nothing in scoring reads it.
func corpusStats(profiles []types.JobProfile) types.CorpusStats {
	stats := types.CorpusStats{
		PostingCount: len(profiles),
		TopSkills:    []string{},
		TopSectors:   []string{},
	}
	if len(profiles) == 0 {
		return stats
	}

	skillCounts := make(map[string]int)
	sectorCounts := make(map[string]int)
	totalSkills := 0
	for _, p := range profiles {
		totalSkills += len(p.AllSkills)
		for _, s := range p.AllSkills {
			skillCounts[s]++
		}
		for _, s := range p.Sectors {
			sectorCounts[s]++
		}
	}

	stats.AvgSkillsPerPosting = float64(totalSkills) / float64(len(profiles))
	stats.TopSkills = topCounted(skillCounts, topStatCount)
	stats.TopSectors = topCounted(sectorCounts, topStatCount)
	return stats
}

// topCounted returns the highest-count keys, ties broken alphabetically.
func topCounted(counts map[string]int, limit int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}
