package commands

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/clipstash/internal/core/clip"
	"github.com/hay-kot/clipstash/internal/printer"
)

type LsCmd struct {
	flags *Flags

	match string
	names bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List saved entries",
		UsageText: "clipstash ls [options]",
		Description: `Prints every history and its entries as a table, sorted by history and key.

Use --match to limit the listing to histories whose name matches a glob
pattern, for example 'work*' or 'projects/**'.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "match",
				Aliases:     []string{"m"},
				Usage:       "only list histories matching this glob",
				Destination: &cmd.match,
			},
			&cli.BoolFlag{
				Name:        "names",
				Usage:       "print history names only, one per line",
				Destination: &cmd.names,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	svc, err := cmd.flags.Service()
	if err != nil {
		return err
	}

	histories, err := svc.Histories(cmd.match)
	if err != nil {
		return err
	}

	p := printer.Ctx(ctx)
	out := c.Root().Writer

	if len(histories) == 0 {
		if cmd.match != "" {
			p.Infof("No clipboard history matches %q", cmd.match)
		} else {
			p.Infof("No clipboard history")
		}
		return nil
	}

	if cmd.names {
		for _, name := range histories {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	store := svc.Store()
	var (
		records []clip.Record
		empty   []string
	)
	for _, r := range store.Records() {
		if slices.Contains(histories, r.History) {
			records = append(records, r)
		}
	}
	for _, name := range emptyHistories(store) {
		if slices.Contains(histories, name) {
			empty = append(empty, name)
		}
	}

	fmt.Fprintln(out, printer.EntryTable(records, empty, cmd.flags.Config.ValuePreview))
	return nil
}
