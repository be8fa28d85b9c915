package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/clipstash/internal/printer"
	"github.com/hay-kot/clipstash/internal/styles"
)

type MenuCmd struct {
	flags *Flags

	noBanner bool
}

// NewMenuCmd creates the interactive menu command
func NewMenuCmd(flags *Flags) *MenuCmd {
	return &MenuCmd{
		flags: flags,
	}
}

// Flags returns the menu-specific flags for registration on the root command
func (cmd *MenuCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-banner",
			Usage:       "do not print the banner before the menu",
			Sources:     cli.EnvVars("CLIPSTASH_NO_BANNER"),
			Destination: &cmd.noBanner,
		},
	}
}

// Run executes the interactive menu. Exported for use as default command.
func (cmd *MenuCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *MenuCmd) run(ctx context.Context, c *cli.Command) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("the interactive menu needs a terminal; use a subcommand instead (see 'clipstash --help')")
	}

	svc, err := cmd.flags.Service()
	if err != nil {
		return err
	}

	out := c.Root().Writer
	if !cmd.noBanner {
		fmt.Fprintln(out, styles.BannerStyle.Render(styles.Banner))
		fmt.Fprintln(out)
	}

	menu := NewMenu(svc, cmd.flags.Shell, cmd.flags.Config, printer.Ctx(ctx), out)
	return menu.Run(ctx)
}
