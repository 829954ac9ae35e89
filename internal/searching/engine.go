// Package searching ranks job postings against a free-text query using
// tokenization, synonym expansion, and field-weighted scoring. It is
// independent of any resume state.
package searching

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/intern-match/internal/lexicon"
	"github.com/jonathan/intern-match/internal/tokenizing"
	"github.com/jonathan/intern-match/internal/types"
)

// DefaultLimit caps a search result list when the caller passes no limit.
const DefaultLimit = 20

// Field weights for scoring. Title matches count triple; the body text is the
// baseline.
const (
	titleWeight            = 3.0
	organizationWeight     = 2.0
	locationWeight         = 2.0
	requirementsWeight     = 1.5
	responsibilitiesWeight = 1.5
	descriptionWeight      = 1.0
)

// field pairs a posting facet with its scoring weight.
type field struct {
	name   string
	weight float64
	text   func(*types.JobPosting) string
}

var searchFields = []field{
	{"title", titleWeight, func(p *types.JobPosting) string { return p.Title }},
	{"organization", organizationWeight, func(p *types.JobPosting) string { return p.Organization }},
	{"location", locationWeight, func(p *types.JobPosting) string { return p.Location }},
	{"requirements", requirementsWeight, func(p *types.JobPosting) string { return strings.Join(p.Requirements, "\n") }},
	{"responsibilities", responsibilitiesWeight, func(p *types.JobPosting) string { return strings.Join(p.Responsibilities, "\n") }},
	{"description", descriptionWeight, func(p *types.JobPosting) string { return p.Description }},
}

// Search scores every posting against the query and returns the passing,
// filtered hits in descending score order, truncated to limit.
//
// An empty or whitespace-only query is browse mode: every posting at score 0,
// filtered and truncated, never an error.
func Search(query string, postings []types.JobPosting, filters types.SearchFilters, limit int) []types.SearchResult {
	if limit <= 0 {
		limit = DefaultLimit
	}

	terms := expandQuery(query)

	results := make([]types.SearchResult, 0, len(postings))
	for i := range postings {
		posting := postings[i]
		if !matchesFilters(&posting, filters) {
			continue
		}

		score, matchedFields := scorePosting(&posting, terms)
		if len(terms) > 0 && score == 0 {
			continue
		}
		results = append(results, types.SearchResult{
			Job:           posting,
			Score:         score,
			MatchedFields: matchedFields,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// expandQuery tokenizes the query and applies the bidirectional synonym
// expansion; nil for a browse-mode query. Short tokens are kept so queries
// like "go" or "ml" score instead of degrading to browse mode.
func expandQuery(query string) []string {
	tokens := tokenizing.QueryTokens(query)
	if len(tokens) == 0 {
		return nil
	}

	seen := map[string]bool{}
	expanded := []string{}
	for _, token := range tokens {
		for _, term := range lexicon.ExpandTerm(token) {
			if !seen[term] {
				seen[term] = true
				expanded = append(expanded, term)
			}
		}
	}
	return expanded
}

// scorePosting sums ln(1+matchCount) × fieldWeight across every term and
// field, recording which fields matched each term for highlighting.
func scorePosting(posting *types.JobPosting, terms []string) (float64, map[string][]string) {
	if len(terms) == 0 {
		return 0, nil
	}

	score := 0.0
	matched := map[string][]string{}
	for _, f := range searchFields {
		text := strings.ToLower(f.text(posting))
		if text == "" {
			continue
		}
		for _, term := range terms {
			count := strings.Count(text, term)
			if count == 0 {
				continue
			}
			score += math.Log(1+float64(count)) * f.weight
			matched[term] = append(matched[term], f.name)
		}
	}
	if len(matched) == 0 {
		return 0, nil
	}
	return score, matched
}

// matchesFilters applies the hard post-scoring predicates. A posting failing
// any active filter is excluded regardless of score.
func matchesFilters(posting *types.JobPosting, filters types.SearchFilters) bool {
	doc := strings.ToLower(strings.Join([]string{
		posting.Title, posting.Organization, posting.Description,
		strings.Join(posting.Requirements, "\n"),
		strings.Join(posting.Responsibilities, "\n"),
		posting.Location,
	}, "\n"))

	if filters.RemoteOnly && !posting.IsRemote && !strings.Contains(doc, "remote") {
		return false
	}
	if filters.BeginnerOnly && !posting.IsBeginner && !containsAny(doc, lexicon.LevelKeywords(types.LevelEntry)) {
		return false
	}
	if filters.HasStipend && !posting.HasStipend && !strings.Contains(doc, "stipend") && !strings.Contains(doc, "paid") {
		return false
	}
	if filters.Location != "" && !strings.Contains(strings.ToLower(posting.Location), strings.ToLower(filters.Location)) {
		return false
	}
	if len(filters.Sectors) > 0 && !matchesSector(doc, filters.Sectors) {
		return false
	}
	return true
}

// matchesSector reports whether the posting text triggers any of the wanted
// sectors' keyword tables. Short keywords only match as whole words.
func matchesSector(doc string, sectors []string) bool {
	for _, sector := range sectors {
		for _, keyword := range lexicon.SectorKeywords(strings.ToLower(sector)) {
			if lexicon.HasKeyword(doc, keyword) {
				return true
			}
		}
	}
	return false
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if p != "" && strings.Contains(text, p) {
			return true
		}
	}
	return false
}
