package types

// JobPosting is the raw input record for one job, as supplied by the caller
// (catalog file, upstream scraper, API payload). Only title and organization
// are mandatory; everything else degrades gracefully.
type JobPosting struct {
	ID               string   `json:"id,omitempty"`
	Title            string   `json:"title" validate:"required"`
	Organization     string   `json:"organization" validate:"required"`
	Location         string   `json:"location,omitempty"`
	Description      string   `json:"description,omitempty"`
	Requirements     []string `json:"requirements,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Keywords         []string `json:"keywords,omitempty"`
	IsRemote         bool     `json:"is_remote,omitempty"`
	IsBeginner       bool     `json:"is_beginner,omitempty"`
	HasStipend       bool     `json:"has_stipend,omitempty"`
}

// RequirementType distinguishes must-have from nice-to-have skills.
type RequirementType string

// Requirement types. Ambiguous mentions default to required.
const (
	RequirementRequired  RequirementType = "required"
	RequirementPreferred RequirementType = "preferred"
)

// JobRequirement is a single skill demand extracted from a posting.
type JobRequirement struct {
	Type     RequirementType `json:"type"`
	Skill    string          `json:"skill"`
	Category SkillCategory   `json:"category"`
}

// JobProfile is the structured extraction result for one posting.
//
// TermWeights depends on corpus-wide IDF and is only fully meaningful when the
// profile was produced by the corpus batch path; standalone analysis uses a
// neutral IDF of 1 for every term.
type JobProfile struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Organization    string             `json:"organization"`
	Location        string             `json:"location,omitempty"`
	RequiredSkills  []JobRequirement   `json:"required_skills"`
	PreferredSkills []JobRequirement   `json:"preferred_skills"`
	AllSkills       []string           `json:"all_skills"`
	ExperienceLevel ExperienceLevel    `json:"experience_level"`
	YearsRequired   int                `json:"years_required"`
	JobTypes        []string           `json:"job_types"`
	IsRemote        bool               `json:"is_remote"`
	IsBeginner      bool               `json:"is_beginner"`
	Sectors         []string           `json:"sectors"`
	HasStipend      bool               `json:"has_stipend"`
	TopKeywords     []string           `json:"top_keywords"`
	TermWeights     map[string]float64 `json:"term_weights,omitempty"`
	RawDescription  string             `json:"-"`
}

// Ref returns the lightweight reference used in match results.
func (p *JobProfile) Ref() JobRef {
	return JobRef{
		ID:           p.ID,
		Title:        p.Title,
		Organization: p.Organization,
		Location:     p.Location,
	}
}

// JobRef identifies a posting without carrying its full extraction.
type JobRef struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Location     string `json:"location,omitempty"`
}

// CorpusStats summarizes a batch analysis run. Purely descriptive; nothing in
// scoring consumes it.
type CorpusStats struct {
	PostingCount        int      `json:"posting_count"`
	AvgSkillsPerPosting float64  `json:"avg_skills_per_posting"`
	TopSkills           []string `json:"top_skills"`
	TopSectors          []string `json:"top_sectors"`
}
