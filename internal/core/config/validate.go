package config

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/hay-kot/criterio"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is valid. Errors are returned as
// criterio.FieldErrors keyed by the YAML field name.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if c.DataDir == "" && !filepath.IsAbs(c.DataFile) {
		errs = errs.Append("data_dir", errors.New("data directory cannot be empty"))
	}

	if strings.TrimSpace(c.DefaultHistory) == "" {
		errs = errs.Append("default_history", errors.New("cannot be empty"))
	}

	switch strings.ToLower(c.ExportFormat) {
	case "json", "csv":
	default:
		errs = errs.Append("export_format", fmt.Errorf("must be json or csv, got %q", c.ExportFormat))
	}

	if c.ValuePreview < 0 {
		errs = errs.Append("value_preview", fmt.Errorf("must be at least 0, got %d", c.ValuePreview))
	}

	if c.Clipboard.Custom() && (len(c.Clipboard.Copy) == 0 || len(c.Clipboard.Paste) == 0) {
		errs = errs.Append("clipboard", errors.New("copy and paste must be set together"))
	}

	return errs.ToError()
}

// ValidateDeep performs Validate plus checks against the filesystem.
func (c *Config) ValidateDeep(configPath string) error {
	err := c.Validate()

	var fieldErrs criterio.FieldErrors
	if err != nil && !errors.As(err, &fieldErrs) {
		return err
	}

	var errs criterio.FieldErrorsBuilder
	for _, fe := range fieldErrs {
		errs = errs.Append(fe.Field, fe.Err)
	}

	if configPath != "" {
		if info, statErr := os.Stat(configPath); statErr == nil && info.IsDir() {
			errs = errs.Append("config", fmt.Errorf("%s is a directory, not a file", configPath))
		}
	}

	if info, statErr := os.Stat(c.DataPath()); statErr == nil && info.IsDir() {
		errs = errs.Append("data_file", fmt.Errorf("%s is a directory, not a file", c.DataPath()))
	}

	return errs.ToError()
}

// Warnings returns non-fatal issues with the configuration.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if _, err := os.Stat(filepath.Dir(c.DataPath())); os.IsNotExist(err) {
		warnings = append(warnings, ValidationWarning{
			Category: "Data",
			Item:     "data_file",
			Message:  fmt.Sprintf("directory %s does not exist yet; it will be created on first save", filepath.Dir(c.DataPath())),
		})
	}

	if c.ValuePreview > 0 && c.ValuePreview < 10 {
		warnings = append(warnings, ValidationWarning{
			Category: "Display",
			Item:     "value_preview",
			Message:  fmt.Sprintf("value_preview of %d hides most of each value", c.ValuePreview),
		})
	}

	if c.Clipboard.Custom() && len(c.Clipboard.Paste) > 0 {
		if _, err := exec.LookPath(c.Clipboard.Paste[0]); err != nil {
			warnings = append(warnings, ValidationWarning{
				Category: "Clipboard",
				Item:     "clipboard.paste",
				Message:  fmt.Sprintf("%s not found in PATH", c.Clipboard.Paste[0]),
			})
		}
	}

	return warnings
}
