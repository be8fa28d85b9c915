package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/clipstash/internal/printer"
)

type SearchCmd struct {
	flags *Flags
}

// NewSearchCmd creates a new search command
func NewSearchCmd(flags *Flags) *SearchCmd {
	return &SearchCmd{flags: flags}
}

// Register adds the search command to the application
func (cmd *SearchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "search",
		Usage:       "Find entries whose history, key, or value contains a term",
		UsageText:   "clipstash search <term>",
		Description: "Matching is case-sensitive. Only matching entries are shown, grouped by history.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *SearchCmd) run(ctx context.Context, c *cli.Command) error {
	args, err := requireArgs(c, 1, "<term>")
	if err != nil {
		return err
	}
	term := args[0]

	svc, err := cmd.flags.Service()
	if err != nil {
		return err
	}

	results, err := svc.Search(ctx, term)
	if err != nil {
		return err
	}

	p := printer.Ctx(ctx)
	if results.Len() == 0 {
		if svc.Store().Empty() {
			p.Infof("Clipboard history is empty")
		} else {
			p.Infof("No results found for search term: %s", term)
		}
		return nil
	}

	fmt.Fprintln(c.Root().Writer, printer.EntryTable(results.Records(), nil, cmd.flags.Config.ValuePreview))
	return nil
}
