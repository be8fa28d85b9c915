package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/clipstash/internal/printer"
)

type ExportCmd struct {
	flags *Flags

	format string
}

// NewExportCmd creates a new export command
func NewExportCmd(flags *Flags) *ExportCmd {
	return &ExportCmd{flags: flags}
}

// Register adds the export command to the application
func (cmd *ExportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "export",
		Usage:     "Write all histories to a JSON or CSV file",
		UsageText: "clipstash export [options] <path>",
		Description: `The format comes from --format, then the file extension, then the
export_format config value. CSV files hold one history,key,value row per
entry without a header; empty histories are not represented.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "file format (json, csv)",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ExportCmd) run(ctx context.Context, c *cli.Command) error {
	args, err := requireArgs(c, 1, "<path>")
	if err != nil {
		return err
	}
	path := args[0]

	format, err := resolveFormat(cmd.format, path, cmd.flags.Config.ExportFormat)
	if err != nil {
		return err
	}

	svc, err := cmd.flags.Service()
	if err != nil {
		return err
	}

	if err := svc.Export(ctx, path, format); err != nil {
		return err
	}

	printer.Ctx(ctx).Successf("Clipboard data exported to %s", path)
	return nil
}

type ImportCmd struct {
	flags *Flags

	format string
}

// NewImportCmd creates a new import command
func NewImportCmd(flags *Flags) *ImportCmd {
	return &ImportCmd{flags: flags}
}

// Register adds the import command to the application
func (cmd *ImportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "import",
		Usage:     "Merge entries from a JSON or CSV file",
		UsageText: "clipstash import [options] <path>",
		Description: `Imported entries overwrite existing ones with the same history and key;
everything else is kept. A file that fails to parse changes nothing.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "file format (json, csv)",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ImportCmd) run(ctx context.Context, c *cli.Command) error {
	args, err := requireArgs(c, 1, "<path>")
	if err != nil {
		return err
	}
	path := args[0]

	format, err := resolveFormat(cmd.format, path, cmd.flags.Config.ExportFormat)
	if err != nil {
		return err
	}

	svc, err := cmd.flags.Service()
	if err != nil {
		return err
	}

	stats, err := svc.Import(ctx, path, format)
	if err != nil {
		return err
	}

	p := printer.Ctx(ctx)
	p.Successf("Data imported from %s", path)
	p.Infof("%s", describeMerge(stats))
	return nil
}
