// Package exchange exports the clipboard store to, and imports it from, the
// JSON and CSV interchange formats.
//
// JSON uses the canonical nested document (the same shape as the data file).
// CSV holds one header-less (history, key, value) record per entry.
package exchange

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hay-kot/clipstash/internal/core/clip"
)

// Format is an interchange format.
type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
)

// Formats lists the supported formats in menu order.
var Formats = []Format{JSON, CSV}

func (f Format) String() string {
	return string(f)
}

// Label returns the upper-case display name.
func (f Format) Label() string {
	return strings.ToUpper(string(f))
}

// ParseFormat accepts a format name or file extension, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "json":
		return JSON, nil
	case "csv":
		return CSV, nil
	default:
		return "", fmt.Errorf("format %q: %w", s, clip.ErrUnsupportedFormat)
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("cannot infer format of %q without an extension: %w", path, clip.ErrUnsupportedFormat)
	}
	return ParseFormat(ext)
}
