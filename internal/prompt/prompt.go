// Package prompt collects user input for the interactive menu.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/hay-kot/clipstash/internal/core/clip"
	"github.com/hay-kot/clipstash/internal/styles"
)

// TextOptions configures a text prompt.
type TextOptions struct {
	Value       string // prefilled value
	Placeholder string
	Required    bool
}

// Shell asks the user for values. Implementations return clip.ErrUserCancelled
// when the user aborts and clip.ErrInvalidInput when a required value is empty
// or there is nothing to choose from.
type Shell interface {
	Text(ctx context.Context, label string, opts TextOptions) (string, error)
	Choice(ctx context.Context, label string, options []string) (int, error)
	Confirm(ctx context.Context, label string) (bool, error)
}

// Huh is a Shell backed by charmbracelet/huh forms.
type Huh struct {
	theme *huh.Theme
}

// NewHuh creates a Shell that renders prompts on the terminal.
func NewHuh() *Huh {
	return &Huh{theme: styles.FormTheme()}
}

func (h *Huh) Text(ctx context.Context, label string, opts TextOptions) (string, error) {
	value := opts.Value

	input := huh.NewInput().
		Title(label).
		Value(&value)

	if opts.Placeholder != "" {
		input.Placeholder(opts.Placeholder)
	}

	if opts.Required {
		input.Validate(requiredValidator(label))
	}

	if err := h.run(ctx, input); err != nil {
		return "", err
	}

	// The form validator already enforced this; guard against non-interactive runs.
	if opts.Required && strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%s is required: %w", label, clip.ErrInvalidInput)
	}
	return value, nil
}

func (h *Huh) Choice(ctx context.Context, label string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("%s: nothing to choose from: %w", label, clip.ErrInvalidInput)
	}

	opts := make([]huh.Option[int], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, i)
	}

	var idx int
	sel := huh.NewSelect[int]().
		Title(label).
		Options(opts...).
		Value(&idx)

	if len(options) > 10 {
		sel.Filtering(true).Height(12)
	}

	if err := h.run(ctx, sel); err != nil {
		return 0, err
	}
	return idx, nil
}

func (h *Huh) Confirm(ctx context.Context, label string) (bool, error) {
	var ok bool
	confirm := huh.NewConfirm().
		Title(label).
		Affirmative("Yes").
		Negative("No").
		Value(&ok)

	if err := h.run(ctx, confirm); err != nil {
		return false, err
	}
	return ok, nil
}

func (h *Huh) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).WithTheme(h.theme)

	err := form.RunWithContext(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, huh.ErrUserAborted), errors.Is(err, context.Canceled):
		return clip.ErrUserCancelled
	default:
		return fmt.Errorf("prompt: %w", err)
	}
}

// requiredValidator returns a validator that checks for non-empty values.
func requiredValidator(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}
