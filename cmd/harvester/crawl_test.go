package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveConfig_LayersFileOverDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"format": "csv", "max_pages": 2}`)

	require.NoError(t, crawlCmd.ParseFlags([]string{
		"--role", "data analyst",
		"--config", path,
		"--out", "cli-out",
	}))

	cfg, err := resolveConfig(crawlCmd)
	require.NoError(t, err)

	assert.Equal(t, "cli-out", cfg.OutDir) // flag wins
	assert.Equal(t, "csv", cfg.Format)     // file wins over defaults
	assert.Equal(t, 2, cfg.MaxPages)
	assert.Equal(t, 10, cfg.WaitSeconds) // built-in default
	assert.Equal(t, 3, cfg.ProbeSeconds)
}

func TestResolveConfig_HeadlessFlagBeatsFile(t *testing.T) {
	path := writeConfigFile(t, `{"headless": true}`)

	require.NoError(t, crawlCmd.ParseFlags([]string{
		"--role", "data analyst",
		"--config", path,
		"--headless=false",
	}))

	cfg, err := resolveConfig(crawlCmd)
	require.NoError(t, err)
	assert.False(t, cfg.Headless)
}

func TestResolveConfig_RejectsInvalidFormat(t *testing.T) {
	path := writeConfigFile(t, `{"format": "pdf"}`)

	require.NoError(t, crawlCmd.ParseFlags([]string{
		"--role", "data analyst",
		"--config", path,
		"--format", "",
	}))

	_, err := resolveConfig(crawlCmd)
	assert.Error(t, err)
}
