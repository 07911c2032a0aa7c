package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/toastboard/internal/board"
	"github.com/colonyops/toastboard/internal/commands"
	"github.com/colonyops/toastboard/internal/core/config"
	"github.com/colonyops/toastboard/internal/core/logging"
	"github.com/colonyops/toastboard/internal/printer"
	"github.com/colonyops/toastboard/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() falls back
	// to runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "toastboard",
		Usage:     "Product dashboard with transient toast notifications",
		UsageText: "toastboard [global options] command [command options]",
		Description: `Toastboard is a small product catalogue whose operations report their
outcome as toasts that disappear on their own.

Run 'toastboard' with no arguments to open the dashboard.
Run 'toastboard demo' to watch a scripted toast sequence in plain output.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TOASTBOARD_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/toastboard.log)",
				Sources:     cli.EnvVars("TOASTBOARD_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TOASTBOARD_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("TOASTBOARD_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; use explicit path or default to <datadir>/toastboard.log
			logFile := flags.LogFile
			if logFile == "" {
				logFile = commands.DefaultLogFile(flags.DataDir)
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			logging.Install(logger)
			logCloser = closer

			ctx = printer.NewContext(ctx, printer.NewStdout())

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				// config subcommands report the problem themselves
				if c.Args().First() == "config" {
					log.Warn().Err(err).Msg("config invalid; app not started")
					return ctx, nil
				}
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			flags.App, err = board.New(ctx, cfg, board.Options{})
			if err != nil {
				return ctx, fmt.Errorf("start app: %w", err)
			}

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if flags.App != nil {
				flags.App.Close()
			}

			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags)

	app = tuiCmd.Register(app)
	app = commands.NewDemoCmd(flags).Register(app)
	app = commands.NewNotifyCmd(flags).Register(app)
	app = commands.NewSignupCmd(flags).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)

	// Register TUI flags on root command
	app.Flags = append(app.Flags, tuiCmd.Flags()...)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'toastboard --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	stop()
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
