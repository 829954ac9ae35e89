package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/intern-match/internal/types"
)

var testNow = time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

func requirementSkills(reqs []types.JobRequirement) []string {
	skills := make([]string, 0, len(reqs))
	for _, r := range reqs {
		skills = append(skills, r.Skill)
	}
	return skills
}

func TestAnalyzeAt_RequiredAndPreferredSkills(t *testing.T) {
	posting := types.JobPosting{
		Title:        "Software Intern",
		Organization: "Acme",
		Description: "Python required for all candidates. " +
			"You will join a small team and pair with mentors on catalog tooling, " +
			"with weekly reviews and demos throughout the whole summer session. " +
			"Kubernetes is nice to have.",
	}

	profile := AnalyzeAt(posting, testNow)

	assert.Contains(t, requirementSkills(profile.RequiredSkills), "python")
	assert.Contains(t, requirementSkills(profile.PreferredSkills), "kubernetes")
	assert.NotContains(t, requirementSkills(profile.RequiredSkills), "kubernetes")
}

func TestAnalyzeAt_UnmarkedSkillDefaultsToRequired(t *testing.T) {
	posting := types.JobPosting{
		Title:        "Backend Intern",
		Organization: "Acme",
		Description:  "You will write Go services backed by PostgreSQL.",
	}

	profile := AnalyzeAt(posting, testNow)

	assert.Contains(t, requirementSkills(profile.RequiredSkills), "postgresql")
	assert.Empty(t, profile.PreferredSkills)
}

func TestAnalyzeAt_LevelAndBeginnerFlag(t *testing.T) {
	posting := types.JobPosting{
		Title:        "Marketing Intern",
		Organization: "Acme",
		Description:  "Help our marketing team with social media campaigns.",
	}

	profile := AnalyzeAt(posting, testNow)

	assert.Equal(t, types.LevelEntry, profile.ExperienceLevel)
	assert.True(t, profile.IsBeginner)
	assert.Contains(t, profile.JobTypes, "internship")
	assert.Contains(t, profile.Sectors, "marketing")
}

func TestAnalyzeAt_StatedLevelBeatsYears(t *testing.T) {
	posting := types.JobPosting{
		Title:        "Senior Platform Engineer",
		Organization: "Acme",
		Description:  "2+ years experience with Terraform.",
	}

	profile := AnalyzeAt(posting, testNow)

	assert.Equal(t, types.LevelSenior, profile.ExperienceLevel)
	assert.False(t, profile.IsBeginner)
}

func TestAnalyzeAt_FlagsMergeFromTextAndPosting(t *testing.T) {
	fromText := AnalyzeAt(types.JobPosting{
		Title:        "Data Analyst",
		Organization: "Acme",
		Description:  "Work from home with a monthly stipend.",
	}, testNow)
	assert.True(t, fromText.IsRemote)
	assert.True(t, fromText.HasStipend)

	fromPosting := AnalyzeAt(types.JobPosting{
		Title:        "Data Analyst",
		Organization: "Acme",
		Description:  "Office-based role in our analytics group.",
		IsRemote:     true,
		HasStipend:   true,
	}, testNow)
	assert.True(t, fromPosting.IsRemote)
	assert.True(t, fromPosting.HasStipend)
}

func TestAnalyzeAt_NeutralTermWeightsWithoutCorpus(t *testing.T) {
	posting := types.JobPosting{
		Title:        "QA Engineer",
		Organization: "Acme",
		Description:  "Maintain our Selenium suite.",
	}

	profile := AnalyzeAt(posting, testNow)

	require.NotEmpty(t, profile.TermWeights)
	assert.InDelta(t, 1.0, profile.TermWeights["selenium"], 1e-9)
}

func TestAllSkills_DeduplicatesKeywordTags(t *testing.T) {
	skills := []types.Skill{
		{Name: "python", Category: types.CategoryProgramming},
		{Name: "docker", Category: types.CategoryCloud},
	}

	all := allSkills(skills, []string{"Python", "git"})

	assert.Equal(t, []string{"python", "docker", "git"}, all)
}

func TestDetectSectors_ShortKeywordsMatchWholeWordsOnly(t *testing.T) {
	// "ui" inside "build" must not tag the design sector.
	assert.NotContains(t, DetectSectors("build quality tooling"), "design")
	assert.Contains(t, DetectSectors("ui prototyping role"), "design")

	// "nonprofit" must not tag technology through its "it" suffix.
	assert.Equal(t, []string{"nonprofit"}, DetectSectors("nonprofit outreach"))
}

func TestDetectLevel(t *testing.T) {
	level, found := DetectLevel("senior backend role")
	assert.Equal(t, types.LevelSenior, level)
	assert.True(t, found)

	level, found = DetectLevel("junior developer internship")
	assert.Equal(t, types.LevelJunior, level)
	assert.True(t, found)

	level, found = DetectLevel("nothing stated here")
	assert.Equal(t, types.LevelEntry, level)
	assert.False(t, found)
}
