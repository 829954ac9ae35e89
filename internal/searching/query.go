package searching

import (
	"regexp"
	"strings"

	"github.com/jonathan/intern-match/internal/lexicon"
	"github.com/jonathan/intern-match/internal/tokenizing"
	"github.com/jonathan/intern-match/internal/types"
)

// filterResidualMax is the residual-token ceiling below which a query with
// detected filters classifies as pure filtering rather than search.
const filterResidualMax = 2

// Fixed trigger tables for filter detection.
var (
	remoteTriggers   = []string{"remote", "work from home", "wfh", "from home"}
	beginnerTriggers = []string{"beginner", "entry level", "entry-level", "no experience", "first job", "newbie"}
	stipendTriggers  = []string{"paid", "stipend", "salary", "compensated"}

	// browsePattern marks list-everything queries.
	browsePattern = regexp.MustCompile(`\b(show|browse|all)\b`)

	// locationPattern captures "in/near/at <place>".
	locationPattern = regexp.MustCompile(`\b(?:in|near|at)\s+([a-z][a-z .'-]*[a-z])`)
)

// ParseQuery heuristically derives search filters and an intent from free
// text. The result is advisory input to Search; the parser never executes
// scoring itself.
func ParseQuery(text string) types.ParsedQuery {
	lowered := strings.ToLower(text)

	filters := types.SearchFilters{}
	consumed := map[string]bool{}

	if phrase := firstMatch(lowered, remoteTriggers); phrase != "" {
		filters.RemoteOnly = true
		markConsumed(consumed, phrase)
	}
	if phrase := firstMatch(lowered, beginnerTriggers); phrase != "" {
		filters.BeginnerOnly = true
		markConsumed(consumed, phrase)
	}
	if phrase := firstMatch(lowered, stipendTriggers); phrase != "" {
		filters.HasStipend = true
		markConsumed(consumed, phrase)
	}

	for _, sector := range lexicon.Sectors() {
		if phrase := firstMatch(lowered, lexicon.SectorKeywords(sector)); phrase != "" {
			filters.Sectors = append(filters.Sectors, sector)
			markConsumed(consumed, phrase)
		}
	}

	if m := locationPattern.FindStringSubmatch(lowered); m != nil {
		place := strings.TrimSpace(m[1])
		if place != "" && !isFilterWord(place) {
			filters.Location = place
			markConsumed(consumed, place)
		}
	}

	residual := residualTerms(lowered, consumed)

	intent := types.IntentSearch
	switch {
	case filters.Active() && len(residual) <= filterResidualMax:
		intent = types.IntentFilter
	case browsePattern.MatchString(lowered):
		intent = types.IntentBrowse
	}

	return types.ParsedQuery{
		Terms:   residual,
		Filters: filters,
		Intent:  intent,
	}
}

// firstMatch returns the first trigger phrase occurring in the text, or "".
// Short phrases only match as whole words.
func firstMatch(text string, phrases []string) string {
	for _, p := range phrases {
		if p != "" && lexicon.HasKeyword(text, p) {
			return p
		}
	}
	return ""
}

// markConsumed records every word of a matched trigger phrase so it is
// excluded from the residual search terms.
func markConsumed(consumed map[string]bool, phrase string) {
	for _, w := range strings.Fields(phrase) {
		consumed[w] = true
	}
}

// isFilterWord guards the location capture against swallowing a filter
// trigger ("jobs in remote" should not become a location).
func isFilterWord(place string) bool {
	for _, list := range [][]string{remoteTriggers, beginnerTriggers, stipendTriggers} {
		for _, p := range list {
			if place == p {
				return true
			}
		}
	}
	return false
}

// residualTerms returns the query's keyword tokens minus consumed filter
// words and generic query filler.
func residualTerms(lowered string, consumed map[string]bool) []string {
	filler := map[string]bool{
		"jobs": true, "job": true, "internship": true, "internships": true,
		"find": true, "looking": true, "want": true, "show": true,
		"browse": true, "all": true, "near": true,
	}

	residual := []string{}
	for _, token := range tokenizing.QueryTokens(lowered) {
		if consumed[token] || filler[token] {
			continue
		}
		residual = append(residual, token)
	}
	return residual
}
