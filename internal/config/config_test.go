package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	cfg, err := NewConfigService(t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.True(t, cfg.UISettings.ShowCommandsEnabled())
	assert.True(t, cfg.UISettings.ShowHelpEnabled())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
runner = "npm run"
log_file = "scriptpick.log"

[ui]
show_commands = false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))

	cfg, err := NewConfigService(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "npm run", cfg.Runner)
	assert.Equal(t, "package.json", cfg.Manifest)
	assert.Equal(t, "scriptpick.log", cfg.LogFile)
	assert.False(t, cfg.UISettings.ShowCommandsEnabled())
	assert.True(t, cfg.UISettings.ShowHelpEnabled())
}

func TestLoadInvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("runner = "), 0644))

	_, err := NewConfigService(dir).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadFromPathMissing(t *testing.T) {
	_, err := NewConfigService(".").LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
