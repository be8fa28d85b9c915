// Package config handles configuration loading and validation for clipstash.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DataFileName is the data file name used when data_file is not configured.
const DataFileName = "clipboard.json"

// Config holds the application configuration.
type Config struct {
	// DataFile overrides the data file location. Relative paths resolve
	// against DataDir.
	DataFile       string `yaml:"data_file"`
	DefaultHistory string `yaml:"default_history"`
	ExportFormat   string `yaml:"export_format"`
	ConfirmDelete  bool   `yaml:"confirm_delete"`
	// ValuePreview caps how many characters of a value tables show. 0 disables truncation.
	ValuePreview int             `yaml:"value_preview"`
	Clipboard    ClipboardConfig `yaml:"clipboard"`
	DataDir      string          `yaml:"-"` // set by caller, not from config file
}

// ClipboardConfig replaces the system clipboard with external commands when
// both are set. Copy receives the text on stdin; Paste prints it on stdout.
type ClipboardConfig struct {
	Copy  []string `yaml:"copy"`
	Paste []string `yaml:"paste"`
}

// Custom reports whether clipboard commands are configured.
func (c ClipboardConfig) Custom() bool {
	return len(c.Copy) > 0 || len(c.Paste) > 0
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultHistory: "default",
		ExportFormat:   "json",
		ConfirmDelete:  true,
		ValuePreview:   60,
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.DefaultHistory == "" {
		c.DefaultHistory = defaults.DefaultHistory
	}
	if c.ExportFormat == "" {
		c.ExportFormat = defaults.ExportFormat
	}
}

// DataPath returns the path to the clipboard data file.
func (c *Config) DataPath() string {
	switch {
	case c.DataFile == "":
		return filepath.Join(c.DataDir, DataFileName)
	case filepath.IsAbs(c.DataFile):
		return c.DataFile
	default:
		return filepath.Join(c.DataDir, c.DataFile)
	}
}
