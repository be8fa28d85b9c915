// Package clipboard provides access to the system clipboard.
package clipboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/hay-kot/clipstash/internal/core/clip"
)

// Gateway reads and writes clipboard text. Failures wrap
// clip.ErrClipboardUnavailable.
type Gateway interface {
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, text string) error
}

// System is the OS clipboard. On Linux it shells out to xclip, xsel, or
// wl-clipboard, whichever is installed.
type System struct{}

// NewSystem returns the OS clipboard gateway.
func NewSystem() *System {
	return &System{}
}

// Available reports whether a clipboard backend was found on this machine.
func (System) Available() bool {
	return !clipboard.Unsupported
}

func (s System) Read(ctx context.Context) (string, error) {
	if !s.Available() {
		return "", fmt.Errorf("no clipboard utility found: %w", clip.ErrClipboardUnavailable)
	}

	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w: %w", clip.ErrClipboardUnavailable, err)
	}
	return text, nil
}

func (s System) Write(ctx context.Context, text string) error {
	if !s.Available() {
		return fmt.Errorf("no clipboard utility found: %w", clip.ErrClipboardUnavailable)
	}

	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w: %w", clip.ErrClipboardUnavailable, err)
	}
	return nil
}

// Memory is an in-process clipboard. It backs tests and the --no-clipboard mode.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory returns a Memory clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

func (m *Memory) Read(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *Memory) Write(ctx context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// Unavailable is a clipboard that always fails, for exercising error paths.
type Unavailable struct{}

func (Unavailable) Read(ctx context.Context) (string, error) {
	return "", fmt.Errorf("clipboard disabled: %w", clip.ErrClipboardUnavailable)
}

func (Unavailable) Write(ctx context.Context, text string) error {
	return fmt.Errorf("clipboard disabled: %w", clip.ErrClipboardUnavailable)
}
