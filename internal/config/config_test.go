package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "tp_requirements_review.md", cfg.Source)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.Render.Style)
	assert.Equal(t, 80, cfg.Render.WordWrap)
	assert.Empty(t, cfg.Countries)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tpdash.yaml")
	data := `source: review/emea.md
countries:
  - Germany
  - France
columns:
  Notes: "Rule Notes"
render:
  style: dark
  word_wrap: 100
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "review/emea.md", cfg.Source)
	assert.Equal(t, []string{"Germany", "France"}, cfg.Countries)
	assert.Equal(t, map[string]string{"Notes": "Rule Notes"}, cfg.Columns)
	assert.Equal(t, "dark", cfg.Render.Style)
	assert.Equal(t, 100, cfg.Render.WordWrap)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_PartialYAMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tpdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: other.md\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "other.md", cfg.Source)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 80, cfg.Render.WordWrap)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TPDASH_SOURCE", "env.md")
	t.Setenv("TPDASH_LOG_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env.md", cfg.Source)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tpdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
