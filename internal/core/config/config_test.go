package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"), dataDir)
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.DefaultHistory)
	assert.Equal(t, "json", cfg.ExportFormat)
	assert.True(t, cfg.ConfirmDelete)
	assert.Equal(t, 60, cfg.ValuePreview)
	assert.Equal(t, filepath.Join(dataDir, "clipboard.json"), cfg.DataPath())
}

func TestLoad_FromFile(t *testing.T) {
	dataDir := t.TempDir()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
data_file: clips/mine.json
default_history: work
export_format: csv
confirm_delete: false
value_preview: 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, dataDir)
	require.NoError(t, err)

	assert.Equal(t, "work", cfg.DefaultHistory)
	assert.Equal(t, "csv", cfg.ExportFormat)
	assert.False(t, cfg.ConfirmDelete)
	assert.Equal(t, 0, cfg.ValuePreview)
	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, filepath.Join(dataDir, "clips", "mine.json"), cfg.DataPath())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_history: \"\"\n"), 0o644))

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.DefaultHistory)
	assert.True(t, cfg.ConfirmDelete)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("export_format: xml\n"), 0o644))

	_, err := Load(path, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("value_preview: [not, an, int]\n"), 0o644))

	_, err := Load(path, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestDataPath_Absolute(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "elsewhere.json")
	cfg := Config{DataDir: "/ignored", DataFile: abs}
	assert.Equal(t, abs, cfg.DataPath())
}

func TestLoad_ClipboardCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
clipboard:
  copy: [tmux, load-buffer, "-"]
  paste: [tmux, save-buffer, "-"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.Clipboard.Custom())
	assert.Equal(t, []string{"tmux", "load-buffer", "-"}, cfg.Clipboard.Copy)
	assert.Equal(t, []string{"tmux", "save-buffer", "-"}, cfg.Clipboard.Paste)
}
