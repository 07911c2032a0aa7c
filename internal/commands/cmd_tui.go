package commands

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/toastboard/internal/core/config"
	"github.com/colonyops/toastboard/internal/core/eventbus"
	"github.com/colonyops/toastboard/internal/core/logging"
	"github.com/colonyops/toastboard/internal/profiler"
	"github.com/colonyops/toastboard/internal/tui"
)

type TuiCmd struct {
	flags        *Flags
	plainIcons   bool
	noWatch      bool
	loggedOut    bool
	profilerPort int
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "plain-icons",
			Usage:       "use ASCII icons instead of nerd font glyphs",
			Sources:     cli.EnvVars("TOASTBOARD_PLAIN_ICONS"),
			Destination: &cmd.plainIcons,
		},
		&cli.BoolFlag{
			Name:        "no-watch",
			Usage:       "do not reload the config file when it changes",
			Destination: &cmd.noWatch,
		},
		&cli.BoolFlag{
			Name:        "logged-out",
			Usage:       "start without logging in as the demo user",
			Destination: &cmd.loggedOut,
		},
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on localhost at the specified port (e.g., 6060)",
			Sources:     cli.EnvVars("TOASTBOARD_PROFILER_PORT"),
			Destination: &cmd.profilerPort,
		},
	}
}

// Register adds the tui command to the application.
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:   "tui",
		Usage:  "Open the product dashboard",
		Flags:  cmd.Flags(),
		Action: cmd.Run,
	})
	return app
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	app := cmd.flags.App

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cmd.profilerPort > 0 {
		if err := profiler.New(cmd.profilerPort, logging.Component("profiler")).Start(ctx); err != nil {
			log.Warn().Err(err).Msg("profiler disabled")
		}
	}

	if !cmd.noWatch {
		go func() {
			err := config.Watch(ctx, cmd.flags.ConfigPath, cmd.flags.DataDir, logging.Component("config"), func(cfg *config.Config) {
				app.Bus.PublishConfigReloaded(eventbus.ConfigReloadedPayload{Config: cfg})
			})
			if err != nil {
				log.Warn().Err(err).Msg("config hot reload disabled")
			}
		}()
	}

	var token string
	if !cmd.loggedOut {
		t, err := app.DemoLogin(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("demo login failed; starting logged out")
		}
		token = t
	}

	return tui.Run(ctx, app, tui.Opts{
		Token:      token,
		PlainIcons: cmd.plainIcons,
	})
}
