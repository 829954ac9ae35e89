package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/intern-match/internal/types"
)

// Thresholds for explanation highlights.
const (
	strongMatchMin  = 3
	learnableGapMax = 3
)

// explain derives the human-readable explanation from the skill-match output
// and the level comparison. Everything here restates score inputs; nothing is
// computed independently.
func explain(resume *types.ResumeProfile, job *types.JobProfile, matched, missing []string) types.MatchExplanation {
	explanation := types.MatchExplanation{
		MatchedSkills: matched,
		MissingSkills: missing,
		StrengthAreas: skillCategories(job, matched),
		GrowthAreas:   skillCategories(job, missing),
		Highlights:    []string{},
	}

	if len(matched) >= strongMatchMin {
		explanation.Highlights = append(explanation.Highlights,
			fmt.Sprintf("Strong skill match: %s", strings.Join(matched, ", ")))
	}
	// Stay silent on zero missing (nothing to say) and on more than three
	// (listing a wall of gaps is noise, not guidance).
	if len(missing) >= 1 && len(missing) <= learnableGapMax {
		explanation.Highlights = append(explanation.Highlights,
			fmt.Sprintf("Learnable gaps: %s", strings.Join(missing, ", ")))
	}

	diff := resume.ExperienceLevel.Rank() - job.ExperienceLevel.Rank()
	switch diff {
	case 0:
		explanation.Highlights = append(explanation.Highlights,
			"Experience level is an exact fit")
	case 1, -1:
		explanation.Highlights = append(explanation.Highlights,
			"Experience level is a near fit")
	}

	if job.IsRemote {
		explanation.Highlights = append(explanation.Highlights, "Remote friendly")
	}
	if job.IsBeginner {
		explanation.Highlights = append(explanation.Highlights, "Open to beginners")
	}

	return explanation
}

// skillCategories maps skill names back to the categories the job's
// requirement lists assign them, deduplicated in requirement order.
func skillCategories(job *types.JobProfile, names []string) []string {
	byName := map[string]types.SkillCategory{}
	for _, r := range job.RequiredSkills {
		byName[r.Skill] = r.Category
	}
	for _, r := range job.PreferredSkills {
		if _, ok := byName[r.Skill]; !ok {
			byName[r.Skill] = r.Category
		}
	}

	seen := map[types.SkillCategory]bool{}
	categories := []string{}
	for _, name := range names {
		category, ok := byName[name]
		if !ok || seen[category] {
			continue
		}
		seen[category] = true
		categories = append(categories, string(category))
	}
	return categories
}
