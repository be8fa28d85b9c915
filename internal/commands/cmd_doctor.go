package commands

import (
	"context"
	"encoding/json"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/clipstash/internal/commands/doctor"
	"github.com/hay-kot/clipstash/internal/printer"
	"github.com/hay-kot/clipstash/internal/store/jsonfile"
)

type DoctorCmd struct {
	flags  *Flags
	format string
	fix    bool
}

func NewDoctorCmd(flags *Flags) *DoctorCmd {
	return &DoctorCmd{flags: flags}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Run health checks on your clipstash setup",
		UsageText:   "clipstash doctor [options]",
		Description: "Checks the configuration, the data file, and the clipboard backend.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
			&cli.BoolFlag{
				Name:        "fix",
				Usage:       "remove temp files left by an interrupted save",
				Destination: &cmd.fix,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	report := doctor.Run(ctx, []doctor.Check{
		doctor.NewConfigCheck(cmd.flags.Config, cmd.flags.ConfigPath),
		doctor.NewDataFileCheck(jsonfile.New(cmd.flags.Config.DataPath()), cmd.fix),
		doctor.NewClipboardCheck(cmd.flags.Clipboard),
	})

	if cmd.format == "json" {
		enc := json.NewEncoder(c.Root().Writer)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		cmd.printReport(ctx, report)
	}

	if !report.Healthy {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *DoctorCmd) printReport(ctx context.Context, report doctor.Report) {
	p := printer.Ctx(ctx)

	for _, result := range report.Checks {
		p.Section(result.Name)

		for _, item := range result.Items {
			switch item.Status {
			case doctor.StatusPass:
				p.CheckItem(item.Label, item.Detail)
			case doctor.StatusWarn:
				p.WarnItem(item.Label, item.Detail)
			case doctor.StatusFail:
				p.FailItem(item.Label, item.Detail)
			}
		}

		p.Printf("")
	}

	p.Printf("Summary: %d passed, %d warnings, %d failed", report.Passed, report.Warned, report.Failed)

	if report.Fixable > 0 && !cmd.fix {
		p.Printf("Run 'clipstash doctor --fix' to repair %d issue(s)", report.Fixable)
	}
}
