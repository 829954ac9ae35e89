package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/intern-match/internal/types"
)

const testResume = `Jane Doe

SKILLS
Python, React, Docker

EXPERIENCE
Software Intern, Acme (2024 - 2025)
Built Python services and deployed Docker containers.
`

const testCatalogJSON = `{
	"jobs": [
		{
			"id": "job-python",
			"title": "Python Developer Intern",
			"organization": "Acme",
			"description": "Remote internship. Python and Docker required.",
			"is_remote": true
		},
		{
			"id": "job-design",
			"title": "Graphic Design Intern",
			"organization": "Studio",
			"description": "Branding and illustration work in Figma."
		}
	]
}`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readJSON(t *testing.T, path string, target any) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, target))
}

func TestRunAnalyzeResume(t *testing.T) {
	dir := t.TempDir()
	analyzeResumeInput = writeTestFile(t, dir, "resume.txt", testResume)
	analyzeResumeOutput = filepath.Join(dir, "out", "profile.json")
	analyzeResumeVerbose = false

	require.NoError(t, runAnalyzeResume(nil, nil))

	var profile types.ResumeProfile
	readJSON(t, analyzeResumeOutput, &profile)
	assert.NotEmpty(t, profile.Skills)
	assert.Contains(t, profile.SkillNames(), "python")
}

func TestRunAnalyzeResume_MissingFile(t *testing.T) {
	analyzeResumeInput = filepath.Join(t.TempDir(), "nope.txt")
	analyzeResumeOutput = filepath.Join(t.TempDir(), "profile.json")

	err := runAnalyzeResume(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load resume")
}

func TestRunAnalyzeJobs(t *testing.T) {
	dir := t.TempDir()
	analyzeJobsCatalog = writeTestFile(t, dir, "catalog.json", testCatalogJSON)
	analyzeJobsOutput = filepath.Join(dir, "corpus.json")
	analyzeJobsVerbose = false

	require.NoError(t, runAnalyzeJobs(nil, nil))

	var output corpusOutput
	readJSON(t, analyzeJobsOutput, &output)
	require.Len(t, output.Profiles, 2)
	assert.Equal(t, 2, output.Stats.PostingCount)
	assert.NotEmpty(t, output.IDF)
}

func TestRunMatch(t *testing.T) {
	dir := t.TempDir()
	matchResumes = []string{writeTestFile(t, dir, "resume.txt", testResume)}
	matchCatalog = writeTestFile(t, dir, "catalog.json", testCatalogJSON)
	matchConfig = ""
	matchOutput = filepath.Join(dir, "matches.json")
	matchVerbose = false

	require.NoError(t, runMatch(nil, nil))

	var results []resumeMatches
	readJSON(t, matchOutput, &results)
	require.Len(t, results, 1)
	require.NotEmpty(t, results[0].Matches)
	assert.Equal(t, "job-python", results[0].Matches[0].Job.ID)
	assert.Equal(t, 1, results[0].Matches[0].Rank)
}

func TestRunMatch_BadConfigPath(t *testing.T) {
	dir := t.TempDir()
	matchResumes = []string{writeTestFile(t, dir, "resume.txt", testResume)}
	matchCatalog = writeTestFile(t, dir, "catalog.json", testCatalogJSON)
	matchConfig = filepath.Join(dir, "nope.json")
	matchOutput = filepath.Join(dir, "matches.json")

	err := runMatch(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRunSearch(t *testing.T) {
	dir := t.TempDir()
	searchCatalog = writeTestFile(t, dir, "catalog.json", testCatalogJSON)
	searchQuery = "remote python"
	searchLimit = 0
	searchOutput = filepath.Join(dir, "results.json")
	searchVerbose = false

	require.NoError(t, runSearch(nil, nil))

	var output searchOutputDoc
	readJSON(t, searchOutput, &output)
	assert.True(t, output.Query.Filters.RemoteOnly)
	require.NotEmpty(t, output.Results)
	assert.Equal(t, "job-python", output.Results[0].Job.ID)
}

func TestRunSearch_EmptyQueryBrowsesCatalog(t *testing.T) {
	dir := t.TempDir()
	searchCatalog = writeTestFile(t, dir, "catalog.json", testCatalogJSON)
	searchQuery = ""
	searchLimit = 0
	searchOutput = filepath.Join(dir, "results.json")

	require.NoError(t, runSearch(nil, nil))

	var output searchOutputDoc
	readJSON(t, searchOutput, &output)
	assert.Len(t, output.Results, 2)
}

func TestWriteJSON_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "out.json")

	require.NoError(t, writeJSON(path, map[string]int{"n": 1}))

	var decoded map[string]int
	readJSON(t, path, &decoded)
	assert.Equal(t, 1, decoded["n"])
}
