// Package tokenizing normalizes free text into unigram and n-gram tokens for
// skill lookup and keyword extraction.
package tokenizing

import (
	"regexp"
	"strings"

	"github.com/jonathan/intern-match/internal/lexicon"
)

// DefaultMaxNgram is the longest phrase emitted as a single token.
const DefaultMaxNgram = 3

// minKeywordLength drops noise tokens during keyword extraction. Skill lookup
// matches against a fixed vocabulary and ignores this limit.
const minKeywordLength = 3

// stripPattern removes everything outside word characters, whitespace and the
// few symbols that occur inside skill names ("c++", "c#", "node.js", "ci/cd").
var stripPattern = regexp.MustCompile(`[^\w\s\-./+#]`)

// whitespacePattern collapses runs of whitespace to a single space.
var whitespacePattern = regexp.MustCompile(`\s+`)

// Normalize lowercases text, strips non-skill punctuation and collapses
// whitespace. Deterministic and pure.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	stripped := stripPattern.ReplaceAllString(lowered, " ")
	collapsed := whitespacePattern.ReplaceAllString(stripped, " ")
	return strings.TrimSpace(collapsed)
}

// Tokenize splits normalized text into unigrams plus every contiguous n-gram
// up to maxNgram words, so multi-word phrases ("machine learning") are
// matchable as atomic terms. A maxNgram below 1 falls back to DefaultMaxNgram.
func Tokenize(text string, maxNgram int) []string {
	if maxNgram < 1 {
		maxNgram = DefaultMaxNgram
	}

	words := strings.Fields(Normalize(text))
	if len(words) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(words)*maxNgram)
	tokens = append(tokens, words...)

	for n := 2; n <= maxNgram; n++ {
		for i := 0; i+n <= len(words); i++ {
			tokens = append(tokens, strings.Join(words[i:i+n], " "))
		}
	}

	return tokens
}

// TokenSet returns the tokens of Tokenize as a membership set.
func TokenSet(text string, maxNgram int) map[string]bool {
	tokens := Tokenize(text, maxNgram)
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

// KeywordTokens returns the unigrams suitable for keyword statistics:
// stop words removed, tokens shorter than three characters dropped.
func KeywordTokens(text string) []string {
	words := strings.Fields(Normalize(text))
	keywords := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.Trim(w, "-./+#")
		if len(w) < minKeywordLength || lexicon.IsStopWord(w) {
			continue
		}
		keywords = append(keywords, w)
	}
	return keywords
}

// QueryTokens returns the unigrams of a search query: stop words removed but
// short tokens kept, so two-letter skill terms ("go", "ml", "c#") survive to
// be scored and synonym-expanded. Only trailing periods are trimmed; "+" and
// "#" are part of skill names.
func QueryTokens(text string) []string {
	words := strings.Fields(Normalize(text))
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimRight(w, ".")
		if w == "" || lexicon.IsStopWord(w) {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// TermFrequencies counts keyword token occurrences in text.
func TermFrequencies(text string) map[string]int {
	freq := make(map[string]int)
	for _, t := range KeywordTokens(text) {
		freq[t]++
	}
	return freq
}
