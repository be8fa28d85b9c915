package validate

import (
	"errors"
	"testing"

	"github.com/hay-kot/clipstash/internal/core/clip"
)

func TestHistoryNameAndKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "work", false},
		{"valid with spaces", "shell snippets", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"only tabs", "\t\t", true},
		{"invalid utf-8", "wo\xffrk", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, fn := range []func(string) error{HistoryName, Key} {
				err := fn(tt.input)
				if (err != nil) != tt.wantErr {
					t.Errorf("validate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				}
				if err != nil && !errors.Is(err, clip.ErrInvalidInput) {
					t.Errorf("validate(%q) error = %v, want ErrInvalidInput", tt.input, err)
				}
			}
		})
	}
}

func TestSearchTerm(t *testing.T) {
	if err := SearchTerm(""); !errors.Is(err, clip.ErrInvalidInput) {
		t.Errorf("SearchTerm(\"\") error = %v, want ErrInvalidInput", err)
	}
	if err := SearchTerm(" "); err != nil {
		t.Errorf("SearchTerm(\" \") error = %v, want nil", err)
	}
}

func TestValue(t *testing.T) {
	for _, v := range []string{"", "echo hi", "line1\r\nline2", "héllo ✓"} {
		if err := Value(v); err != nil {
			t.Errorf("Value(%q) error = %v, want nil", v, err)
		}
	}

	if err := Value("bad\xc3\x28"); !errors.Is(err, clip.ErrInvalidInput) {
		t.Errorf("Value(invalid) error = %v, want ErrInvalidInput", err)
	}
}
