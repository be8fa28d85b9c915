// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hay-kot/clipstash/internal/core/clip"
)

// HistoryName validates a history name is non-empty after trimming whitespace
// and is valid UTF-8.
func HistoryName(name string) error {
	return required("history name", name)
}

// Key validates an entry key is non-empty after trimming whitespace and is
// valid UTF-8.
func Key(key string) error {
	return required("key", key)
}

// SearchTerm validates a search term is non-empty. Whitespace is a legal term.
func SearchTerm(term string) error {
	if term == "" {
		return fmt.Errorf("search term is required: %w", clip.ErrInvalidInput)
	}
	return nil
}

// Value validates an entry value. Any text is allowed, including the empty
// string, as long as it is valid UTF-8; the data file is JSON and cannot hold
// other bytes unchanged.
func Value(value string) error {
	return text("value", value)
}

func required(label, s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%s is required: %w", label, clip.ErrInvalidInput)
	}
	return text(label, s)
}

func text(label, s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%s is not valid UTF-8: %w", label, clip.ErrInvalidInput)
	}
	return nil
}
