package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/clipstash/internal/printer"
)

type RmCmd struct {
	flags *Flags
}

// NewRmCmd creates a new rm command
func NewRmCmd(flags *Flags) *RmCmd {
	return &RmCmd{flags: flags}
}

// Register adds the rm command to the application
func (cmd *RmCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "rm",
		Usage:       "Delete a saved entry",
		UsageText:   "clipstash rm <history> <key>",
		Description: "Removes <key> from <history>. The history itself is kept, even when it becomes empty.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *RmCmd) run(ctx context.Context, c *cli.Command) error {
	args, err := requireArgs(c, 2, "<history> <key>")
	if err != nil {
		return err
	}
	history, key := args[0], args[1]

	svc, err := cmd.flags.Service()
	if err != nil {
		return err
	}

	if err := svc.Delete(ctx, history, key); err != nil {
		return err
	}

	printer.Ctx(ctx).Successf("Key %q deleted from clipboard history %q", key, history)
	return nil
}
