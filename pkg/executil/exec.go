// Package executil runs external commands.
package executil

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Executor runs external commands.
type Executor interface {
	// Output executes a command and returns its standard output.
	Output(ctx context.Context, cmd string, args ...string) ([]byte, error)
	// RunInput executes a command with input on its standard input.
	RunInput(ctx context.Context, input string, cmd string, args ...string) error
}

// RealExecutor calls actual commands.
type RealExecutor struct{}

// Output executes a command and returns its standard output. Standard error is
// folded into the returned error.
func (e *RealExecutor) Output(ctx context.Context, cmd string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	c := exec.CommandContext(ctx, cmd, args...)
	c.Stderr = &stderr

	out, err := c.Output()
	if err != nil {
		return out, commandError(cmd, stderr.String(), err)
	}
	return out, nil
}

// RunInput executes a command with input on its standard input.
func (e *RealExecutor) RunInput(ctx context.Context, input string, cmd string, args ...string) error {
	var stderr bytes.Buffer
	c := exec.CommandContext(ctx, cmd, args...)
	c.Stdin = strings.NewReader(input)
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		return commandError(cmd, stderr.String(), err)
	}
	return nil
}

func commandError(cmd, stderr string, err error) error {
	if msg := strings.TrimSpace(stderr); msg != "" {
		return fmt.Errorf("exec %s: %w: %s", cmd, err, msg)
	}
	return fmt.Errorf("exec %s: %w", cmd, err)
}
