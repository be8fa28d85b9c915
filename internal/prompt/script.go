package prompt

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/hay-kot/clipstash/internal/core/clip"
)

// Answer is one scripted reply.
type Answer struct {
	text    string
	choice  string
	confirm bool
	err     error
}

// Say answers a text prompt.
func Say(text string) Answer { return Answer{text: text} }

// Pick answers a choice prompt with the option labelled label.
func Pick(label string) Answer { return Answer{choice: label} }

// Yes answers a confirmation prompt affirmatively.
func Yes() Answer { return Answer{confirm: true} }

// No answers a confirmation prompt negatively.
func No() Answer { return Answer{} }

// Cancel aborts the prompt.
func Cancel() Answer { return Answer{err: clip.ErrUserCancelled} }

// Script is a Shell that replays canned answers in order. Once the answers
// run out every prompt is cancelled. Labels of asked prompts are recorded.
type Script struct {
	answers []Answer
	asked   []string
}

// NewScript creates a Script replaying answers.
func NewScript(answers ...Answer) *Script {
	return &Script{answers: answers}
}

// Asked returns the labels of every prompt shown so far.
func (s *Script) Asked() []string {
	return s.asked
}

// Remaining returns the number of unused answers.
func (s *Script) Remaining() int {
	return len(s.answers)
}

func (s *Script) next(label string) (Answer, error) {
	s.asked = append(s.asked, label)
	if len(s.answers) == 0 {
		return Answer{}, clip.ErrUserCancelled
	}

	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, a.err
}

func (s *Script) Text(_ context.Context, label string, opts TextOptions) (string, error) {
	a, err := s.next(label)
	if err != nil {
		return "", err
	}

	if opts.Required && strings.TrimSpace(a.text) == "" {
		return "", fmt.Errorf("%s is required: %w", label, clip.ErrInvalidInput)
	}
	return a.text, nil
}

func (s *Script) Choice(_ context.Context, label string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("%s: nothing to choose from: %w", label, clip.ErrInvalidInput)
	}

	a, err := s.next(label)
	if err != nil {
		return 0, err
	}

	idx := slices.Index(options, a.choice)
	if idx < 0 {
		return 0, fmt.Errorf("%s: scripted choice %q not in %v", label, a.choice, options)
	}
	return idx, nil
}

func (s *Script) Confirm(_ context.Context, label string) (bool, error) {
	a, err := s.next(label)
	if err != nil {
		return false, err
	}
	return a.confirm, nil
}
