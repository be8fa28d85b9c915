package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/clipstash/internal/core/config"
)

// fieldLabels maps config field names to the labels doctor prints.
var fieldLabels = map[string]string{
	"config":          "Config file",
	"data_dir":        "Data directory",
	"data_file":       "Data file",
	"default_history": "Default history",
	"export_format":   "Export format",
	"value_preview":   "Value preview",
	"clipboard":       "Clipboard",
	"clipboard.paste": "Clipboard",
}

func fieldLabel(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	if field == "" {
		return "Validation"
	}
	return field
}

// ConfigCheck validates the configuration and reports the settings that
// decide where entries live and how they move: the data file, the export
// format, and the clipboard backend.
type ConfigCheck struct {
	config     *config.Config
	configPath string
}

// NewConfigCheck creates a configuration check.
func NewConfigCheck(cfg *config.Config, configPath string) *ConfigCheck {
	return &ConfigCheck{
		config:     cfg,
		configPath: configPath,
	}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	if c.config == nil {
		result.fail("Config loaded", "configuration not loaded")
		return result
	}

	var fieldErrs criterio.FieldErrors
	if err := c.config.ValidateDeep(c.configPath); err != nil && !errors.As(err, &fieldErrs) {
		result.fail("Validation", err.Error())
		return result
	}

	failed := make(map[string]bool, len(fieldErrs))
	for _, fe := range fieldErrs {
		failed[fe.Field] = true
	}

	if !failed["config"] {
		result.pass("Config file", c.source())
	}

	for _, fe := range fieldErrs {
		result.fail(fieldLabel(fe.Field), fe.Err.Error())
	}

	if !failed["data_dir"] && !failed["data_file"] {
		result.pass("Data file", c.config.DataPath())
	}
	if !failed["export_format"] {
		result.pass("Export format", c.config.ExportFormat)
	}
	if !failed["clipboard"] {
		result.pass("Clipboard", c.backend())
	}

	for _, w := range c.config.Warnings() {
		result.warn(fieldLabel(w.Item), w.Message)
	}

	return result
}

func (c *ConfigCheck) source() string {
	if c.configPath == "" {
		return "none, using defaults"
	}
	if _, err := os.Stat(c.configPath); err != nil {
		return fmt.Sprintf("%s not found, using defaults", c.configPath)
	}
	return c.configPath
}

func (c *ConfigCheck) backend() string {
	cb := c.config.Clipboard
	if !cb.Custom() {
		return "system clipboard"
	}
	return fmt.Sprintf("copy with %q, paste with %q", strings.Join(cb.Copy, " "), strings.Join(cb.Paste, " "))
}
