package commands

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/clipstash/internal/core/clip"
	"github.com/hay-kot/clipstash/internal/exchange"
)

// requireArgs returns exactly n positional arguments or an ErrInvalidInput
// naming the expected usage.
func requireArgs(c *cli.Command, n int, usage string) ([]string, error) {
	args := c.Args().Slice()
	if len(args) != n {
		return nil, fmt.Errorf("expected %s, got %d argument(s): %w", usage, len(args), clip.ErrInvalidInput)
	}
	return args, nil
}

// resolveFormat picks the interchange format from, in order, the explicit
// flag, the file extension, and the configured default.
func resolveFormat(flag, path, fallback string) (exchange.Format, error) {
	if flag != "" {
		return exchange.ParseFormat(flag)
	}
	if f, err := exchange.FormatFromPath(path); err == nil {
		return f, nil
	}
	return exchange.ParseFormat(fallback)
}
