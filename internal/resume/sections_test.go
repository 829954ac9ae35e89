package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sectionedResume = `Jane Doe
jane@example.com

Experience:
Software Intern, Acme Corp
Built internal tools in Python

Education
BS Computer Science, State University

Skills
Python, React, SQL`

func TestExtractSection_Experience(t *testing.T) {
	entries := ExtractSection(sectionedResume, "experience")

	assert.Equal(t, []string{
		"Software Intern, Acme Corp",
		"Built internal tools in Python",
	}, entries)
}

func TestExtractSection_Education(t *testing.T) {
	entries := ExtractSection(sectionedResume, "education")

	assert.Equal(t, []string{"BS Computer Science, State University"}, entries)
}

func TestExtractSection_MissingSectionIsEmpty(t *testing.T) {
	assert.Empty(t, ExtractSection("no sections at all", "experience"))
	assert.Empty(t, ExtractSection("", "education"))
}

func TestExtractSection_HeaderSynonyms(t *testing.T) {
	text := "WORK HISTORY\nBarista, Coffee Co"

	assert.Equal(t, []string{"Barista, Coffee Co"}, ExtractSection(text, "experience"))
}

func TestExtractSection_BodyLineIsNotHeader(t *testing.T) {
	// A sentence mentioning education mid-line must not open a section.
	text := "I value education and hard work\nExperience\nIntern, Acme"

	assert.Empty(t, ExtractSection(text, "education"))
	assert.Equal(t, []string{"Intern, Acme"}, ExtractSection(text, "experience"))
}
