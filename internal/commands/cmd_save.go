package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/clipstash/internal/printer"
)

type SaveCmd struct {
	flags *Flags

	value string
	stdin bool
}

// NewSaveCmd creates a new save command
func NewSaveCmd(flags *Flags) *SaveCmd {
	return &SaveCmd{flags: flags}
}

// Register adds the save command to the application
func (cmd *SaveCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "save",
		Usage:     "Save the clipboard under a key",
		UsageText: "clipstash save [options] <history> <key>",
		Description: `Stores the current clipboard text as <key> in <history>, creating the
history if needed. An existing key is overwritten.

Use --value or --stdin to store text without reading the clipboard.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "value",
				Usage:       "store this text instead of the clipboard",
				Destination: &cmd.value,
			},
			&cli.BoolFlag{
				Name:        "stdin",
				Usage:       "store text read from standard input",
				Destination: &cmd.stdin,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *SaveCmd) run(ctx context.Context, c *cli.Command) error {
	args, err := requireArgs(c, 2, "<history> <key>")
	if err != nil {
		return err
	}
	history, key := args[0], args[1]

	svc, err := cmd.flags.Service()
	if err != nil {
		return err
	}

	p := printer.Ctx(ctx)

	switch {
	case cmd.stdin:
		r := c.Root().Reader
		if r == nil {
			r = os.Stdin
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		if err := svc.Put(ctx, history, key, string(data)); err != nil {
			return err
		}
	case c.IsSet("value"):
		if err := svc.Put(ctx, history, key, cmd.value); err != nil {
			return err
		}
	default:
		if _, err := svc.Capture(ctx, history, key); err != nil {
			return err
		}
	}

	p.Successf("Saved %q to clipboard history %q", key, history)
	return nil
}
