// Package matching combines per-facet similarity scores into ranked,
// explained matches of one resume against a job corpus.
package matching

// Weights are the blend proportions for the four sub-scores, treated as
// parts of the summed total (defaults sum to 100).
type Weights struct {
	Skill      int `json:"skill"`
	Experience int `json:"experience"`
	Keyword    int `json:"keyword"`
	Sector     int `json:"sector"`
}

// Config controls one matching run. Zero-valued fields are replaced by the
// defaults before scoring.
type Config struct {
	Weights      Weights `json:"weights"`
	MinScore     int     `json:"min_score"`
	MaxResults   int     `json:"max_results"`
	PreferRemote bool    `json:"prefer_remote"`
}

// Default policy constants. These exact values are a compatibility contract.
const (
	defaultSkillWeight      = 40
	defaultExperienceWeight = 20
	defaultKeywordWeight    = 25
	defaultSectorWeight     = 15
	defaultMinScore         = 20
	defaultMaxResults       = 50

	// Additive boosts applied after the weighted blend, each clamped to
	// [0,100] before the next is applied.
	beginnerBoost = 10
	remoteBoost   = 5

	// skillSurplusBonus rewards a resume listing strictly more skills than
	// the job requires.
	skillSurplusBonus = 10

	// neutralScore resolves degenerate data (no skills, no sectors) without
	// penalizing the match.
	neutralScore = 50
)

// DefaultConfig returns the standard weights, minimum score and result cap.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Skill:      defaultSkillWeight,
			Experience: defaultExperienceWeight,
			Keyword:    defaultKeywordWeight,
			Sector:     defaultSectorWeight,
		},
		MinScore:   defaultMinScore,
		MaxResults: defaultMaxResults,
	}
}

// withDefaults fills unset fields so a partially specified config behaves
// predictably.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Weights == (Weights{}) {
		c.Weights = d.Weights
	}
	if c.MinScore == 0 {
		c.MinScore = d.MinScore
	}
	if c.MaxResults == 0 {
		c.MaxResults = d.MaxResults
	}
	return c
}

// totalWeight sums the blend parts; guards the division in the overall score.
func (w Weights) total() int {
	return w.Skill + w.Experience + w.Keyword + w.Sector
}
