package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("github:\n  owner: alice\n"), 0644))

	cfg, err := LoadConfigFromPath(path)

	require.NoError(t, err)
	assert.Equal(t, "alice", cfg.GitHub.Owner)
}

func TestLoadConfigFromPath_MissingFile(t *testing.T) {
	cfg, err := LoadConfigFromPath(filepath.Join(t.TempDir(), "config.yaml"))

	require.NoError(t, err)
	assert.Empty(t, cfg.GitHub.Owner)
}

func TestLoadConfigFromPath_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("github: [unclosed\n"), 0644))

	_, err := LoadConfigFromPath(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestGetConfigPath(t *testing.T) {
	path, err := GetConfigPath()

	require.NoError(t, err)
	assert.Contains(t, path, filepath.Join(".wfsync", "config.yaml"))
}
