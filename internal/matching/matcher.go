package matching

import (
	"sort"

	"github.com/jonathan/intern-match/internal/types"
)

// Match scores a resume against every job profile and returns the ranked
// result list. Jobs scoring below cfg.MinScore are dropped entirely; the
// remainder is sorted by overall score descending with input order preserved
// for ties, truncated to cfg.MaxResults, and ranked 1..N.
//
// The only failure modes are the two caller preconditions: a missing resume
// analysis and an empty job list.
func Match(resume *types.ResumeProfile, jobs []types.JobProfile, cfg Config) ([]types.MatchResult, error) {
	if resume == nil {
		return nil, &InputError{Message: "resume has not been analyzed"}
	}
	if len(jobs) == 0 {
		return nil, &InputError{Message: "job list is empty"}
	}
	cfg = cfg.withDefaults()

	results := make([]types.MatchResult, 0, len(jobs))
	for i := range jobs {
		job := jobs[i]
		score, matched, missing := scoreJob(resume, &job, cfg)
		if score.Overall < cfg.MinScore {
			continue
		}
		results = append(results, types.MatchResult{
			Job:         job.Ref(),
			JobProfile:  job,
			Score:       score,
			Explanation: explain(resume, &job, matched, missing),
		})
	}

	// Stable sort: equal overall scores keep their input order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score.Overall > results[j].Score.Overall
	})

	if len(results) > cfg.MaxResults {
		results = results[:cfg.MaxResults]
	}
	for i := range results {
		results[i].Rank = i + 1
	}
	return results, nil
}

// QuickMatch scores a resume against a single job using the default weights,
// regardless of any caller configuration, and bypasses the minimum-score
// filter so the caller always sees the result.
func QuickMatch(resume *types.ResumeProfile, job *types.JobProfile) (*types.MatchResult, error) {
	if resume == nil {
		return nil, &InputError{Message: "resume has not been analyzed"}
	}
	if job == nil {
		return nil, &InputError{Message: "job is missing"}
	}

	score, matched, missing := scoreJob(resume, job, DefaultConfig())
	return &types.MatchResult{
		Job:         job.Ref(),
		JobProfile:  *job,
		Score:       score,
		Explanation: explain(resume, job, matched, missing),
		Rank:        1,
	}, nil
}
