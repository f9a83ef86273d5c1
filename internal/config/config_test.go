package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad_ExplicitFile(t *testing.T) {
	p := writeFile(t, t.TempDir(), "cfg.yaml",
		"prompt: \"gpa> \"\ndata_file: grades.txt\ngpa_precision: 3\nhistory_limit: 10\nlog_level: debug\n")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "gpa> ", cfg.Prompt)
	assert.Equal(t, "grades.txt", cfg.DataFile)
	assert.Equal(t, 3, cfg.GPAPrecision)
	assert.Equal(t, 10, cfg.HistoryLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	p := writeFile(t, t.TempDir(), "cfg.yaml", "history_limit: 5\n")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, 2, cfg.GPAPrecision)
	assert.Equal(t, 5, cfg.HistoryLimit)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "cfg.yaml", "history_limit: [\n")
	_, err := Load(p)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestLoad_DefaultSearch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "gpa-tracker.yaml", "prompt: \"$ \"\n")
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "$ ", cfg.Prompt)
}

func TestLoad_NoFileFound(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GPA_TRACKER_PROMPT", "")
	t.Setenv("GPA_TRACKER_GPA_PRECISION", "-1")
	t.Setenv("GPA_TRACKER_HISTORY_LIMIT", "2")
	t.Setenv("GPA_TRACKER_LOG_LEVEL", "error")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Prompt)
	assert.Equal(t, -1, cfg.GPAPrecision)
	assert.Equal(t, 2, cfg.HistoryLimit)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoad_BadEnvNumber(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GPA_TRACKER_HISTORY_LIMIT", "lots")

	_, err := Load("")
	assert.ErrorContains(t, err, "GPA_TRACKER_HISTORY_LIMIT")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.HistoryLimit = -1
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.GPAPrecision = -2
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}
