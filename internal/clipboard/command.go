package clipboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/clipstash/internal/core/clip"
	"github.com/hay-kot/clipstash/pkg/executil"
)

// Command is a clipboard backed by user-configured copy and paste commands,
// for setups the system backend does not cover (tmux buffers, remote
// sessions, custom wrappers).
type Command struct {
	exec  executil.Executor
	copy  []string
	paste []string
}

// NewCommand creates a Command gateway. copyArgv receives the text on
// standard input; pasteArgv prints the clipboard on standard output.
func NewCommand(exec executil.Executor, copyArgv, pasteArgv []string) (*Command, error) {
	if len(copyArgv) == 0 || len(pasteArgv) == 0 {
		return nil, errors.New("clipboard command needs both copy and paste")
	}
	return &Command{exec: exec, copy: copyArgv, paste: pasteArgv}, nil
}

func (c *Command) Read(ctx context.Context) (string, error) {
	out, err := c.exec.Output(ctx, c.paste[0], c.paste[1:]...)
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w: %w", clip.ErrClipboardUnavailable, err)
	}
	return string(out), nil
}

func (c *Command) Write(ctx context.Context, text string) error {
	if err := c.exec.RunInput(ctx, text, c.copy[0], c.copy[1:]...); err != nil {
		return fmt.Errorf("write clipboard: %w: %w", clip.ErrClipboardUnavailable, err)
	}
	return nil
}
