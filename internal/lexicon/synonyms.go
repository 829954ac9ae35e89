package lexicon

import "sort"

// synonyms is the static expansion table for search queries. Expansion is
// bidirectional: a term's declared synonyms are added, and if the term appears
// as a synonym of some other key, that key is added too.
var synonyms = map[string][]string{
	"developer":  {"engineer", "programmer", "coder"},
	"internship": {"intern", "co-op", "placement"},
	"remote":     {"work from home", "distributed", "virtual"},
	"javascript": {"js", "ecmascript"},
	"python":     {"py"},
	"frontend":   {"front-end", "ui", "client-side"},
	"backend":    {"back-end", "server-side"},
	"fullstack":  {"full-stack", "full stack"},
	"ml":         {"machine learning", "ai"},
	"data":       {"analytics", "analysis"},
	"design":     {"ux", "ui", "creative"},
	"marketing":  {"growth", "advertising"},
	"startup":    {"start-up", "early-stage"},
	"job":        {"position", "role", "opening"},
	"paid":       {"stipend", "salary", "compensated"},
}

// Synonyms returns the declared synonyms for a lowercase term, or nil.
func Synonyms(term string) []string {
	return synonyms[term]
}

// SynonymKeys returns every key that lists the given term as a synonym,
// sorted so expansion order is deterministic.
func SynonymKeys(term string) []string {
	var keys []string
	for key, values := range synonyms {
		for _, v := range values {
			if v == term {
				keys = append(keys, key)
				break
			}
		}
	}
	sort.Strings(keys)
	return keys
}

// ExpandTerm returns the term plus its bidirectional synonym expansion,
// deduplicated, original term first.
func ExpandTerm(term string) []string {
	seen := map[string]bool{term: true}
	expanded := []string{term}
	for _, s := range Synonyms(term) {
		if !seen[s] {
			seen[s] = true
			expanded = append(expanded, s)
		}
	}
	for _, k := range SynonymKeys(term) {
		if !seen[k] {
			seen[k] = true
			expanded = append(expanded, k)
		}
	}
	return expanded
}
