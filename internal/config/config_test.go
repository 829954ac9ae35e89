package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/intern-match/internal/matching"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `{
		"weights": {"skill": 50, "experience": 20, "keyword": 20, "sector": 10},
		"min_score": 30,
		"max_results": 10,
		"prefer_remote": true,
		"search_limit": 5,
		"verbose": true
	}`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Weights.Skill)
	assert.Equal(t, 30, cfg.MinScore)
	assert.Equal(t, 10, cfg.MaxResults)
	assert.True(t, cfg.PreferRemote)
	assert.Equal(t, 5, cfg.SearchLimit)
	assert.True(t, cfg.Verbose)
}

func TestLoad_EmptyObjectUsesZeroValues(t *testing.T) {
	path := writeConfig(t, `{}`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Zero(t, cfg.MinScore)
	assert.Zero(t, cfg.MaxResults)
	assert.False(t, cfg.PreferRemote)
}

func TestLoad_MinScoreOutOfRange(t *testing.T) {
	path := writeConfig(t, `{"min_score": 150}`)

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoad_NegativeMaxResults(t *testing.T) {
	path := writeConfig(t, `{"max_results": -1}`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestMatchConfig_CarriesFieldsThrough(t *testing.T) {
	cfg := &Config{
		Weights:      matching.Weights{Skill: 40, Experience: 20, Keyword: 25, Sector: 15},
		MinScore:     25,
		MaxResults:   5,
		PreferRemote: true,
	}

	mc := cfg.MatchConfig()

	assert.Equal(t, cfg.Weights, mc.Weights)
	assert.Equal(t, 25, mc.MinScore)
	assert.Equal(t, 5, mc.MaxResults)
	assert.True(t, mc.PreferRemote)
}
