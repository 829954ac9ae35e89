package lexicon

// stopWords are dropped during keyword extraction. The list deliberately stays
// small; vocabulary matching ignores it entirely.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true,
	"has": true, "have": true, "in": true, "is": true, "it": true,
	"its": true, "of": true, "on": true, "or": true, "our": true,
	"that": true, "the": true, "their": true, "this": true, "to": true,
	"was": true, "we": true, "were": true, "will": true, "with": true,
	"you": true, "your": true, "they": true, "them": true, "been": true,
	"being": true, "can": true, "do": true, "does": true, "not": true,
	"all": true, "also": true, "may": true, "more": true, "who": true,
	"about": true, "into": true, "other": true, "such": true, "than": true,
	"then": true, "these": true, "through": true, "when": true, "where": true,
	"which": true, "while": true, "would": true, "should": true, "must": true,
}

// IsStopWord reports whether a lowercase token is a stop word.
func IsStopWord(token string) bool {
	return stopWords[token]
}
