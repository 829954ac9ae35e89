// Package types provides type definitions for structured data used throughout the intern-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillCategory identifies which vocabulary table a skill was drawn from.
type SkillCategory string

// Skill categories recognized by the lexicon.
const (
	CategoryProgramming    SkillCategory = "programming"
	CategoryFrameworks     SkillCategory = "frameworks"
	CategoryDatabases      SkillCategory = "databases"
	CategoryCloud          SkillCategory = "cloud"
	CategoryDataScience    SkillCategory = "datascience"
	CategoryDesign         SkillCategory = "design"
	CategoryManagement     SkillCategory = "management"
	CategorySoft           SkillCategory = "soft"
	CategoryTesting        SkillCategory = "testing"
	CategoryAPIs           SkillCategory = "apis"
	CategoryVersionControl SkillCategory = "versioncontrol"
)

// ExperienceLevel buckets total years of experience into a coarse seniority band.
type ExperienceLevel string

// Experience levels, ordered from least to most experienced.
const (
	LevelEntry  ExperienceLevel = "entry"
	LevelJunior ExperienceLevel = "junior"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
)

// Rank returns the numeric position of a level (entry=0 .. senior=3).
// Unknown levels rank as entry.
func (l ExperienceLevel) Rank() int {
	switch l {
	case LevelJunior:
		return 1
	case LevelMid:
		return 2
	case LevelSenior:
		return 3
	default:
		return 0
	}
}

// Skill represents a recognized competency extracted from free text.
// Confidence is a heuristic weight in [0,1], not a probability.
type Skill struct {
	Name       string        `json:"name"`
	Category   SkillCategory `json:"category"`
	Confidence float64       `json:"confidence"`
	Context    string        `json:"context,omitempty"`
}

// ResumeProfile is the structured extraction result for one resume.
// It is derived entirely from RawText and never mutated after construction;
// re-analysis produces a fresh profile.
type ResumeProfile struct {
	Skills               []Skill                    `json:"skills"`
	SkillsByCategory     map[SkillCategory][]string `json:"skills_by_category"`
	ExperienceEntries    []string                   `json:"experience_entries"`
	EducationEntries     []string                   `json:"education_entries"`
	TotalYearsExperience int                        `json:"total_years_experience"`
	ExperienceLevel      ExperienceLevel            `json:"experience_level"`
	TopKeywords          []string                   `json:"top_keywords"`
	TermWeights          map[string]float64         `json:"term_weights,omitempty"`
	RawText              string                     `json:"-"`
}

// SkillNames returns the extracted skill names in confidence order.
func (p *ResumeProfile) SkillNames() []string {
	names := make([]string, len(p.Skills))
	for i, s := range p.Skills {
		names[i] = s.Name
	}
	return names
}
