package tokenizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_PreservesSkillPunctuation(t *testing.T) {
	normalized := Normalize("Built APIs in C++, C# and Node.js!")

	assert.Equal(t, "built apis in c++ c# and node.js", normalized)
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "python react", Normalize("  Python \t\n React  "))
}

func TestTokenize_EmitsNgrams(t *testing.T) {
	tokens := Tokenize("machine learning engineer", 3)

	assert.Contains(t, tokens, "machine")
	assert.Contains(t, tokens, "machine learning")
	assert.Contains(t, tokens, "learning engineer")
	assert.Contains(t, tokens, "machine learning engineer")
}

func TestTokenize_EmptyInput(t *testing.T) {
	assert.Empty(t, Tokenize("", 3))
	assert.Empty(t, Tokenize("   \n\t ", 3))
}

func TestTokenize_InvalidMaxNgramFallsBack(t *testing.T) {
	tokens := Tokenize("deep learning models", 0)

	assert.Contains(t, tokens, "deep learning")
	assert.Contains(t, tokens, "deep learning models")
}

func TestTokenSet_Membership(t *testing.T) {
	set := TokenSet("machine learning", 2)

	assert.True(t, set["machine learning"])
	assert.True(t, set["machine"])
	assert.False(t, set["deep learning"])
}

func TestKeywordTokens_DropsStopWordsAndShortTokens(t *testing.T) {
	keywords := KeywordTokens("We built an API for the data team in Go")

	assert.Contains(t, keywords, "built")
	assert.Contains(t, keywords, "api")
	assert.Contains(t, keywords, "data")
	assert.NotContains(t, keywords, "the")
	assert.NotContains(t, keywords, "we")
	assert.NotContains(t, keywords, "go") // below minimum keyword length
}

func TestQueryTokens_KeepsShortSkillTerms(t *testing.T) {
	tokens := QueryTokens("go ml qa c# internships")

	assert.Equal(t, []string{"go", "ml", "qa", "c#", "internships"}, tokens)
}

func TestQueryTokens_DropsStopWordsOnly(t *testing.T) {
	tokens := QueryTokens("a job in the ui team")

	assert.Contains(t, tokens, "ui")
	assert.Contains(t, tokens, "job")
	assert.NotContains(t, tokens, "the")
	assert.NotContains(t, tokens, "a")
}

func TestQueryTokens_TrimsTrailingPeriods(t *testing.T) {
	tokens := QueryTokens("python. node.js")

	assert.Equal(t, []string{"python", "node.js"}, tokens)
}

func TestTermFrequencies_Counts(t *testing.T) {
	freq := TermFrequencies("python python react")

	assert.Equal(t, 2, freq["python"])
	assert.Equal(t, 1, freq["react"])
}
