// Package resume extracts a structured ResumeProfile from unstructured resume
// text: recognized skills with heuristic confidence, experience years and
// level, section snippets, and keyword statistics.
//
// Analysis is total over its input domain: empty, malformed, or adversarial
// text degrades to an empty profile, never an error.
package resume

import (
	"sort"
	"strings"
	"time"

	"github.com/jonathan/intern-match/internal/lexicon"
	"github.com/jonathan/intern-match/internal/tokenizing"
	"github.com/jonathan/intern-match/internal/types"
)

// Confidence components for a skill hit. Heuristic policy constants.
const (
	confidenceBase    = 0.5
	actionVerbBonus   = 0.2
	skillSectionBonus = 0.2
	repeatBonus       = 0.05
	repeatBonusCap    = 0.15

	// actionVerbWindow is how many characters around a skill mention are
	// searched for an action verb.
	actionVerbWindow = 60

	// skillSectionSpan is how far past a skills-section marker a mention
	// still counts as "listed under skills".
	skillSectionSpan = 400
)

// topKeywordCount is how many keywords a profile retains.
const topKeywordCount = 20

// Analyze produces a ResumeProfile from raw resume text, resolving
// "present" date ranges against the current clock.
func Analyze(text string) *types.ResumeProfile {
	return AnalyzeAt(text, time.Now())
}

// AnalyzeAt is Analyze with an injectable reference time, so date-range
// resolution is deterministic under test.
func AnalyzeAt(text string, now time.Time) *types.ResumeProfile {
	profile := &types.ResumeProfile{
		Skills:            []types.Skill{},
		SkillsByCategory:  map[types.SkillCategory][]string{},
		ExperienceEntries: []string{},
		EducationEntries:  []string{},
		ExperienceLevel:   types.LevelEntry,
		TopKeywords:       []string{},
		TermWeights:       map[string]float64{},
		RawText:           text,
	}
	if strings.TrimSpace(text) == "" {
		return profile
	}

	normalized := tokenizing.Normalize(text)
	tokens := tokenizing.Tokenize(text, tokenizing.DefaultMaxNgram)

	profile.Skills = ExtractSkills(normalized, tokens)
	profile.SkillsByCategory = groupByCategory(profile.Skills)

	years := EstimateYears(text, now)
	profile.TotalYearsExperience = years
	profile.ExperienceLevel = LevelForYears(years)

	profile.ExperienceEntries = ExtractSection(text, "experience")
	profile.EducationEntries = ExtractSection(text, "education")

	profile.TopKeywords = TopKeywords(text, topKeywordCount)
	profile.TermWeights = termWeights(text)

	return profile
}

// ExtractSkills tests every lexicon vocabulary entry against the token set
// and scores hits by action-verb proximity, skills-section placement, and
// repeat mentions. One entry per skill name; output sorted by descending
// confidence, then name.
func ExtractSkills(normalized string, tokens []string) []types.Skill {
	tokenCounts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		tokenCounts[t]++
	}

	sectionRegions := skillSectionRegions(normalized)

	var skills []types.Skill
	for _, category := range lexicon.Categories() {
		for _, term := range lexicon.SkillsIn(category) {
			count := tokenCounts[term]
			if count == 0 {
				continue
			}
			confidence, context := scoreSkillMention(normalized, term, count, sectionRegions)
			skills = append(skills, types.Skill{
				Name:       term,
				Category:   category,
				Confidence: confidence,
				Context:    context,
			})
		}
	}

	sort.SliceStable(skills, func(i, j int) bool {
		if skills[i].Confidence != skills[j].Confidence {
			return skills[i].Confidence > skills[j].Confidence
		}
		return skills[i].Name < skills[j].Name
	})

	if skills == nil {
		skills = []types.Skill{}
	}
	return skills
}

// scoreSkillMention computes the confidence for a vocabulary term known to
// occur in the document, taking the best-scoring occurrence.
func scoreSkillMention(normalized, term string, count int, sectionRegions [][2]int) (float64, string) {
	confidence := confidenceBase

	repeat := repeatBonus * float64(count-1)
	if repeat > repeatBonusCap {
		repeat = repeatBonusCap
	}
	confidence += repeat

	verbHit := false
	sectionHit := false
	context := ""
	for _, pos := range occurrences(normalized, term) {
		if context == "" {
			context = snippet(normalized, pos, len(term))
		}
		if !verbHit && nearActionVerb(normalized, pos, len(term)) {
			verbHit = true
		}
		if !sectionHit && inRegions(pos, sectionRegions) {
			sectionHit = true
		}
		if verbHit && sectionHit {
			break
		}
	}
	if verbHit {
		confidence += actionVerbBonus
	}
	if sectionHit {
		confidence += skillSectionBonus
	}

	if confidence > 1 {
		confidence = 1
	}
	if confidence < 0 {
		confidence = 0
	}
	return confidence, context
}

// occurrences returns the byte offsets of every occurrence of term.
func occurrences(text, term string) []int {
	var positions []int
	offset := 0
	for {
		idx := strings.Index(text[offset:], term)
		if idx < 0 {
			break
		}
		positions = append(positions, offset+idx)
		offset += idx + len(term)
	}
	return positions
}

// nearActionVerb reports whether any action verb sits within
// actionVerbWindow characters of the mention.
func nearActionVerb(text string, pos, termLen int) bool {
	start := pos - actionVerbWindow
	if start < 0 {
		start = 0
	}
	end := pos + termLen + actionVerbWindow
	if end > len(text) {
		end = len(text)
	}
	window := text[start:end]
	for _, verb := range lexicon.ActionVerbs() {
		if strings.Contains(window, verb) {
			return true
		}
	}
	return false
}

// skillSectionRegions locates the spans following skills-section markers.
func skillSectionRegions(normalized string) [][2]int {
	var regions [][2]int
	for _, marker := range lexicon.SkillSectionMarkers() {
		for _, pos := range occurrences(normalized, marker) {
			end := pos + skillSectionSpan
			if end > len(normalized) {
				end = len(normalized)
			}
			regions = append(regions, [2]int{pos, end})
		}
	}
	return regions
}

func inRegions(pos int, regions [][2]int) bool {
	for _, r := range regions {
		if pos >= r[0] && pos < r[1] {
			return true
		}
	}
	return false
}

// snippet returns a short context window around a mention.
func snippet(text string, pos, termLen int) string {
	start := pos - 40
	if start < 0 {
		start = 0
	}
	end := pos + termLen + 40
	if end > len(text) {
		end = len(text)
	}
	return strings.TrimSpace(text[start:end])
}

// groupByCategory collects skill names per category, preserving the
// confidence order of the input.
func groupByCategory(skills []types.Skill) map[types.SkillCategory][]string {
	grouped := make(map[types.SkillCategory][]string)
	for _, s := range skills {
		grouped[s.Category] = append(grouped[s.Category], s.Name)
	}
	return grouped
}

// termWeights builds the resume-side sparse term vector from raw term
// frequencies. Resume vectors carry no IDF; rarity scaling only applies to
// corpus-analyzed postings.
func termWeights(text string) map[string]float64 {
	freq := tokenizing.TermFrequencies(text)
	weights := make(map[string]float64, len(freq))
	for term, count := range freq {
		weights[term] = float64(count)
	}
	return weights
}
