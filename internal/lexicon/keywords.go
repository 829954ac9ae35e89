package lexicon

import (
	"strings"

	"github.com/jonathan/intern-match/internal/types"
)

// shortKeywordLen is the length below which a trigger keyword only matches as
// a whole word, so "ui" cannot hit inside "build".
const shortKeywordLen = 4

// HasKeyword reports whether a trigger keyword occurs in normalized text.
// Keywords of shortKeywordLen and above match as substrings, which lets
// phrases like "fintech" trigger on "tech".
func HasKeyword(text, keyword string) bool {
	if len(keyword) >= shortKeywordLen {
		return strings.Contains(text, keyword)
	}

	offset := 0
	for {
		idx := strings.Index(text[offset:], keyword)
		if idx < 0 {
			return false
		}
		pos := offset + idx
		if isWordBoundary(text, pos-1) && isWordBoundary(text, pos+len(keyword)) {
			return true
		}
		offset = pos + 1
	}
}

// isWordBoundary reports whether position i falls outside the text or on a
// byte that cannot be part of a word. Text is expected lowercase.
func isWordBoundary(text string, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	c := text[i]
	return !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_')
}

// jobLevelKeywords maps seniority bands to the phrases postings use for them.
var jobLevelKeywords = map[types.ExperienceLevel][]string{
	types.LevelEntry: {
		"entry level", "entry-level", "no experience", "internship", "intern",
		"trainee", "graduate", "new grad", "beginner",
	},
	types.LevelJunior: {
		"junior", "1-2 years", "1+ years", "early career", "associate",
	},
	types.LevelMid: {
		"mid level", "mid-level", "3-5 years", "3+ years", "intermediate",
	},
	types.LevelSenior: {
		"senior", "lead", "principal", "staff", "5+ years", "6+ years",
		"expert", "architect",
	},
}

// LevelKeywords returns the posting phrases associated with a seniority band.
func LevelKeywords(level types.ExperienceLevel) []string {
	return jobLevelKeywords[level]
}

// JobLevels returns seniority bands in a fixed order, most senior first so
// that level detection prefers the strongest stated signal.
func JobLevels() []types.ExperienceLevel {
	return []types.ExperienceLevel{
		types.LevelSenior,
		types.LevelMid,
		types.LevelJunior,
		types.LevelEntry,
	}
}

// jobTypeKeywords maps job-type labels to their trigger phrases.
var jobTypeKeywords = map[string][]string{
	"internship": {"intern", "internship", "co-op", "coop", "placement"},
	"full-time":  {"full time", "full-time", "permanent"},
	"part-time":  {"part time", "part-time"},
	"contract":   {"contract", "contractor", "freelance", "temporary"},
	"volunteer":  {"volunteer", "unpaid", "pro bono"},
}

// JobTypes returns the job-type labels in a fixed, deterministic order.
func JobTypes() []string {
	return []string{"internship", "full-time", "part-time", "contract", "volunteer"}
}

// JobTypeKeywords returns the trigger phrases for a job-type label.
func JobTypeKeywords(jobType string) []string {
	return jobTypeKeywords[jobType]
}

// sectorKeywords maps sector labels to their trigger phrases.
var sectorKeywords = map[string][]string{
	"technology": {"software", "tech", "saas", "startup", "developer", "engineering"},
	"finance":    {"finance", "fintech", "banking", "investment", "trading", "accounting"},
	"healthcare": {"health", "medical", "hospital", "biotech", "pharma", "clinical"},
	"education":  {"education", "edtech", "school", "university", "teaching", "tutoring"},
	"marketing":  {"marketing", "advertising", "branding", "social media", "seo", "content"},
	"design":     {"design", "creative", "studio", "ux", "ui"},
	"research":   {"research", "laboratory", "r&d", "scientific"},
	"business":   {"business", "operations", "strategy", "sales"},
	"consulting": {"consulting", "consultancy", "advisory"},
	"nonprofit":  {"nonprofit", "non-profit", "ngo", "charity", "social impact"},
}

// Sectors returns the sector labels in a fixed, deterministic order.
func Sectors() []string {
	return []string{
		"technology", "finance", "healthcare", "education", "marketing",
		"design", "research", "business", "consulting", "nonprofit",
	}
}

// SectorKeywords returns the trigger phrases for a sector label.
func SectorKeywords(sector string) []string {
	return sectorKeywords[sector]
}

// actionVerbs signal hands-on use of a nearby skill mention and raise its
// extraction confidence.
var actionVerbs = []string{
	"built", "developed", "designed", "implemented", "created", "led",
	"managed", "deployed", "maintained", "optimized", "automated",
	"architected", "launched", "delivered", "integrated", "migrated",
	"wrote", "tested", "analyzed", "improved",
}

// ActionVerbs returns the action-verb list.
func ActionVerbs() []string {
	return actionVerbs
}

// sectionHeaders maps canonical resume section names to their header synonyms.
// Matching is case-insensitive against the start of a line.
var sectionHeaders = map[string][]string{
	"experience": {
		"experience", "work experience", "employment", "work history",
		"professional experience", "internships",
	},
	"education": {
		"education", "academic background", "academics", "qualifications",
	},
	"skills": {
		"skills", "technical skills", "technologies", "proficiencies",
		"core competencies", "tools",
	},
}

// SectionHeaders returns the header synonyms for a canonical section name.
func SectionHeaders(section string) []string {
	return sectionHeaders[section]
}

// skillSectionMarkers flag text regions that enumerate skills; a skill hit
// near one gains confidence. Prefix forms cover "technologies", "proficient",
// "proficiencies".
var skillSectionMarkers = []string{"skills", "technolog", "proficien"}

// SkillSectionMarkers returns the marker prefixes for skill-list regions.
func SkillSectionMarkers() []string {
	return skillSectionMarkers
}

// Required/preferred markers for classifying skill mentions in postings.
var (
	requiredMarkers  = []string{"required", "must have", "must-have", "essential", "minimum"}
	preferredMarkers = []string{"preferred", "nice to have", "nice-to-have", "bonus", "plus", "desirable"}
)

// RequiredMarkers returns the phrases signalling a hard requirement.
func RequiredMarkers() []string {
	return requiredMarkers
}

// PreferredMarkers returns the phrases signalling a nice-to-have.
func PreferredMarkers() []string {
	return preferredMarkers
}
