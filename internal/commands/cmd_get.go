package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/clipstash/internal/printer"
)

type GetCmd struct {
	flags *Flags

	stdout bool
}

// NewGetCmd creates a new get command
func NewGetCmd(flags *Flags) *GetCmd {
	return &GetCmd{flags: flags}
}

// Register adds the get command to the application
func (cmd *GetCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "get",
		Usage:     "Copy a saved entry back to the clipboard",
		UsageText: "clipstash get [options] <history> <key>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "print",
				Aliases:     []string{"p"},
				Usage:       "write the value to stdout instead of the clipboard",
				Destination: &cmd.stdout,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *GetCmd) run(ctx context.Context, c *cli.Command) error {
	args, err := requireArgs(c, 2, "<history> <key>")
	if err != nil {
		return err
	}
	history, key := args[0], args[1]

	svc, err := cmd.flags.Service()
	if err != nil {
		return err
	}

	if cmd.stdout {
		value, err := svc.Get(ctx, history, key)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(c.Root().Writer, value)
		return err
	}

	if _, err := svc.Recall(ctx, history, key); err != nil {
		return err
	}

	printer.Ctx(ctx).Successf("Copied %q from %q to clipboard", key, history)
	return nil
}
