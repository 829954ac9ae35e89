package resume

import (
	"sort"

	"github.com/jonathan/intern-match/internal/tokenizing"
)

// TopKeywords returns the most frequent keyword unigrams in descending
// frequency order, ties broken alphabetically for determinism.
func TopKeywords(text string, limit int) []string {
	freq := tokenizing.TermFrequencies(text)
	if len(freq) == 0 {
		return []string{}
	}

	terms := make([]string, 0, len(freq))
	for term := range freq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if limit > 0 && len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}
