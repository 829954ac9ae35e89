package types

// MatchScore holds the four per-facet sub-scores and their weighted blend.
// Every field is an integer in [0,100]; clamping is applied at every stage of
// computation, not only at the end.
type MatchScore struct {
	Skill      int `json:"skill"`
	Experience int `json:"experience"`
	Keyword    int `json:"keyword"`
	Sector     int `json:"sector"`
	Overall    int `json:"overall"`
}

// MatchExplanation is the human-readable justification for a match. It is
// derived deterministically from the score inputs and carries no independent
// state.
type MatchExplanation struct {
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	StrengthAreas []string `json:"strength_areas"`
	GrowthAreas   []string `json:"growth_areas"`
	Highlights    []string `json:"highlights"`
}

// MatchResult is one ranked match of a resume against a posting. Rank is
// assigned after sorting the full result set for one matching run; it is not
// stable across runs with different inputs.
type MatchResult struct {
	Job         JobRef           `json:"job"`
	JobProfile  JobProfile       `json:"job_profile"`
	Score       MatchScore       `json:"score"`
	Explanation MatchExplanation `json:"explanation"`
	Rank        int              `json:"rank"`
}
