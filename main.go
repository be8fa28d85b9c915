package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/clipstash/internal/clipboard"
	"github.com/hay-kot/clipstash/internal/commands"
	"github.com/hay-kot/clipstash/internal/core/config"
	"github.com/hay-kot/clipstash/internal/printer"
	"github.com/hay-kot/clipstash/internal/prompt"
	"github.com/hay-kot/clipstash/pkg/executil"
	"github.com/hay-kot/clipstash/pkg/utils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	if err := setupLogger("info", "", nil); err != nil {
		panic(err)
	}

	var (
		p     = printer.New(os.Stderr)
		ctx   = printer.NewContext(context.Background(), p)
		flags = &commands.Flags{}
	)

	var deferredLogs *utils.DeferredWriter

	app := &cli.Command{
		Name:      "clipstash",
		Usage:     "Keep named clipboard snippets across sessions",
		UsageText: "clipstash [global options] command [command options]",
		Description: `Clipstash saves clipboard text under a key inside a named history and copies
it back on demand. Everything is kept in a single JSON file and can be
exported to, or merged from, JSON and CSV.

Run 'clipstash' with no arguments to open the interactive menu.
Run 'clipstash save <history> <key>' to store the clipboard directly.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("CLIPSTASH_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (optional)",
				Sources:     cli.EnvVars("CLIPSTASH_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("CLIPSTASH_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("CLIPSTASH_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "file",
				Usage:       "path to the clipboard data file (overrides data_file; defaults to clipboard.json inside --data-dir rather than the working directory)",
				Sources:     cli.EnvVars("CLIPSTASH_FILE"),
				Destination: &flags.DataFile,
			},
			&cli.BoolFlag{
				Name:        "no-clipboard",
				Usage:       "use an in-memory clipboard instead of the system one",
				Sources:     cli.EnvVars("CLIPSTASH_NO_CLIPBOARD"),
				Destination: &flags.NoClipboard,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// No subcommand means the interactive menu (default action)
			isMenu := len(c.Args().Slice()) == 0

			// While prompts own the terminal, buffer logs to display after exit
			var deferred io.Writer
			if isMenu {
				deferredLogs = &utils.DeferredWriter{}
				deferred = deferredLogs
			}

			if err := setupLogger(flags.LogLevel, flags.LogFile, deferred); err != nil {
				return ctx, err
			}

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			if flags.DataFile != "" {
				abs, err := filepath.Abs(flags.DataFile)
				if err != nil {
					return ctx, fmt.Errorf("resolve data file: %w", err)
				}
				cfg.DataFile = abs
			}
			flags.Config = cfg

			switch {
			case flags.NoClipboard:
				flags.Clipboard = clipboard.NewMemory("")
			case cfg.Clipboard.Custom():
				cmdClip, err := clipboard.NewCommand(&executil.RealExecutor{}, cfg.Clipboard.Copy, cfg.Clipboard.Paste)
				if err != nil {
					return ctx, err
				}
				flags.Clipboard = cmdClip
			default:
				system := clipboard.NewSystem()
				if !system.Available() {
					log.Debug().Msg("no clipboard utility found; clipboard operations will fail")
				}
				flags.Clipboard = system
			}

			flags.Shell = prompt.NewHuh()

			log.Debug().
				Str("config", flags.ConfigPath).
				Str("data_file", cfg.DataPath()).
				Msg("configuration loaded")

			return ctx, nil
		},
	}

	menuCmd := commands.NewMenuCmd(flags)

	app = commands.NewSaveCmd(flags).Register(app)
	app = commands.NewGetCmd(flags).Register(app)
	app = commands.NewLsCmd(flags).Register(app)
	app = commands.NewSearchCmd(flags).Register(app)
	app = commands.NewRmCmd(flags).Register(app)
	app = commands.NewExportCmd(flags).Register(app)
	app = commands.NewImportCmd(flags).Register(app)
	app = commands.NewDoctorCmd(flags).Register(app)

	// Register menu flags on root command
	app.Flags = append(app.Flags, menuCmd.Flags()...)

	// Set the menu as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'clipstash --help' for usage", c.Args().First())
		}
		return menuCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Println()
		printer.Ctx(ctx).FatalError(err)
		exitCode = 1
	}

	// Flush deferred logs to console after the menu exits
	if deferredLogs != nil {
		if err := deferredLogs.Flush(zerolog.ConsoleWriter{Out: os.Stderr}); err != nil {
			fmt.Fprintf(os.Stderr, "failed to flush logs: %v\n", err)
		}
	}

	os.Exit(exitCode)
}

func setupLogger(level string, logFile string, deferred io.Writer) error {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}

	switch {
	case logFile != "":
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}

		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}

		if deferred != nil {
			output = io.MultiWriter(file, deferred)
		} else {
			output = io.MultiWriter(zerolog.ConsoleWriter{Out: os.Stderr}, file)
		}
	case deferred != nil:
		output = deferred
	}

	log.Logger = log.Output(output).Level(parsedLevel)

	return nil
}
