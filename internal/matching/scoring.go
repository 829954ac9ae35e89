package matching

import (
	"math"
	"strings"

	"github.com/jonathan/intern-match/internal/lexicon"
	"github.com/jonathan/intern-match/internal/similarity"
	"github.com/jonathan/intern-match/internal/types"
)

// experienceScoreTable maps the signed difference between resume level rank
// and job level rank to a score. This table is an exact contract.
func experienceScore(resume *types.ResumeProfile, job *types.JobProfile) int {
	diff := resume.ExperienceLevel.Rank() - job.ExperienceLevel.Rank()
	switch {
	case diff >= 2:
		return 80
	case diff == 1:
		return 90
	case diff == 0:
		return 100
	case diff == -1:
		return 70
	case diff == -2:
		return 40
	default:
		return 20
	}
}

// skillScore measures how much of the job's demanded skill list the resume
// covers, by case-insensitive substring match in either direction. A job
// listing zero skills scores a neutral 50 for any resume.
func skillScore(resume *types.ResumeProfile, job *types.JobProfile) (score int, matched, missing []string) {
	jobSkills := demandedSkills(job)
	matched = []string{}
	missing = []string{}
	if len(jobSkills) == 0 {
		return neutralScore, matched, missing
	}

	resumeSkills := resume.SkillNames()
	for _, jobSkill := range jobSkills {
		if skillListed(resumeSkills, jobSkill) {
			matched = append(matched, jobSkill)
		} else {
			missing = append(missing, jobSkill)
		}
	}

	score = clamp(int(math.Round(float64(len(matched)) / float64(len(jobSkills)) * 100)))
	if len(resumeSkills) > len(jobSkills) {
		score = clamp(score + skillSurplusBonus)
	}
	return score, matched, missing
}

// demandedSkills returns the job's required then preferred skill names.
func demandedSkills(job *types.JobProfile) []string {
	skills := make([]string, 0, len(job.RequiredSkills)+len(job.PreferredSkills))
	for _, r := range job.RequiredSkills {
		skills = append(skills, r.Skill)
	}
	for _, r := range job.PreferredSkills {
		skills = append(skills, r.Skill)
	}
	return skills
}

// skillListed reports whether any resume skill matches the job skill as a
// case-insensitive substring, in either direction.
func skillListed(resumeSkills []string, jobSkill string) bool {
	jobLower := strings.ToLower(jobSkill)
	for _, rs := range resumeSkills {
		resumeLower := strings.ToLower(rs)
		if strings.Contains(resumeLower, jobLower) || strings.Contains(jobLower, resumeLower) {
			return true
		}
	}
	return false
}

// Keyword score blend proportions.
const (
	jaccardShare = 0.4
	cosineShare  = 0.6
)

// keywordScore blends keyword-set Jaccard overlap with term-vector cosine
// similarity.
func keywordScore(resume *types.ResumeProfile, job *types.JobProfile) int {
	jac := similarity.Jaccard(similarity.Set(resume.TopKeywords), similarity.Set(job.TopKeywords))
	cos := similarity.Cosine(resume.TermWeights, job.TermWeights)
	return clamp(int(math.Round(100 * (jaccardShare*jac + cosineShare*cos))))
}

// Sector score shape: a floor of 20 for any overlap computation, plus the
// overlap ratio scaled to 100, capped at 100.
const sectorFloor = 20

// sectorScore maps the resume's non-empty skill categories to their implied
// sectors and scores the overlap with the job's declared sectors. Either side
// being empty resolves to a neutral 50.
func sectorScore(resume *types.ResumeProfile, job *types.JobProfile) int {
	if len(job.Sectors) == 0 {
		return neutralScore
	}

	implied := impliedSectors(resume)
	if len(implied) == 0 {
		return neutralScore
	}

	overlap := 0
	for _, sector := range job.Sectors {
		if implied[sector] {
			overlap++
		}
	}

	score := sectorFloor + int(math.Round(100*float64(overlap)/float64(len(job.Sectors))))
	if score > 100 {
		score = 100
	}
	return score
}

// impliedSectors derives the sector set suggested by a resume's skill
// categories.
func impliedSectors(resume *types.ResumeProfile) map[string]bool {
	implied := map[string]bool{}
	for category, names := range resume.SkillsByCategory {
		if len(names) == 0 {
			continue
		}
		for _, sector := range lexicon.SectorsFor(category) {
			implied[sector] = true
		}
	}
	return implied
}

// scoreJob computes all four sub-scores, the weighted blend, and the
// post-blend boosts, clamping at every stage.
func scoreJob(resume *types.ResumeProfile, job *types.JobProfile, cfg Config) (types.MatchScore, []string, []string) {
	skill, matched, missing := skillScore(resume, job)
	score := types.MatchScore{
		Skill:      skill,
		Experience: experienceScore(resume, job),
		Keyword:    keywordScore(resume, job),
		Sector:     sectorScore(resume, job),
	}

	total := cfg.Weights.total()
	if total <= 0 {
		total = DefaultConfig().Weights.total()
	}
	weighted := float64(score.Skill*cfg.Weights.Skill+
		score.Experience*cfg.Weights.Experience+
		score.Keyword*cfg.Weights.Keyword+
		score.Sector*cfg.Weights.Sector) / float64(total)
	overall := clamp(int(math.Round(weighted)))

	// Boosts apply in a fixed order, each clamped before the next.
	if resume.ExperienceLevel == types.LevelEntry && job.IsBeginner {
		overall = clamp(overall + beginnerBoost)
	}
	if cfg.PreferRemote && job.IsRemote {
		overall = clamp(overall + remoteBoost)
	}
	score.Overall = overall

	return score, matched, missing
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
