package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopKeywords_FrequencyOrder(t *testing.T) {
	text := "python python python react react docker"

	assert.Equal(t, []string{"python", "react", "docker"}, TopKeywords(text, 20))
}

func TestTopKeywords_TiesBreakAlphabetically(t *testing.T) {
	text := "zebra apple zebra apple"

	assert.Equal(t, []string{"apple", "zebra"}, TopKeywords(text, 20))
}

func TestTopKeywords_LimitApplied(t *testing.T) {
	text := "alpha beta gamma delta epsilon"

	assert.Len(t, TopKeywords(text, 3), 3)
}

func TestTopKeywords_EmptyText(t *testing.T) {
	assert.Empty(t, TopKeywords("", 20))
	assert.Empty(t, TopKeywords("a an the", 20))
}
