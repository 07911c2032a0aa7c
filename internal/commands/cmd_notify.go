package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/toastboard/internal/core/notify"
	"github.com/colonyops/toastboard/internal/core/toast"
	"github.com/colonyops/toastboard/internal/core/validate"
	"github.com/colonyops/toastboard/internal/printer"
	"github.com/colonyops/toastboard/pkg/iojson"
)

// toastRequest is one entry of a JSON toast batch.
type toastRequest struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
	// Duration is a Go duration string. Empty uses the severity default,
	// "0s" keeps the toast until the command exits.
	Duration string `json:"duration,omitempty"`
}

type NotifyCmd struct {
	flags    *Flags
	severity string
	duration time.Duration
	sticky   bool
	batch    iojson.FileReader[[]toastRequest]
}

// NewNotifyCmd creates a new notify command.
func NewNotifyCmd(flags *Flags) *NotifyCmd {
	return &NotifyCmd{flags: flags}
}

// Register adds the notify command to the application.
func (cmd *NotifyCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "notify",
		Usage:     "Show toasts without the dashboard and print them until they expire",
		UsageText: "toastboard notify [options] <message>",
		Description: `Admits one toast (or a JSON batch read with --file) into the toast manager
and prints every snapshot until no expiring toast is left.

Batch entries look like {"message": "...", "severity": "error", "duration": "2s"}.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "severity",
				Aliases:     []string{"s"},
				Usage:       "toast severity (success, error, warning, info)",
				Value:       string(notify.SeverityInfo),
				Destination: &cmd.severity,
			},
			&cli.DurationFlag{
				Name:        "duration",
				Aliases:     []string{"d"},
				Usage:       "override the severity's default lifetime",
				Destination: &cmd.duration,
			},
			&cli.BoolFlag{
				Name:        "sticky",
				Usage:       "print the toast once and exit without waiting for expiry",
				Destination: &cmd.sticky,
			},
			cmd.batch.Flag(`read a JSON array of toasts from a file ("-" for stdin)`),
		},
		ShellComplete: SeverityCompleter(),
		Action:        cmd.run,
	})
	return app
}

func (cmd *NotifyCmd) run(ctx context.Context, c *cli.Command) error {
	reqs, err := cmd.requests(strings.Join(c.Args().Slice(), " "))
	if err != nil {
		return err
	}

	app := cmd.flags.App
	p := printer.Ctx(ctx)
	sp := newSnapshotPrinter(app, p)
	unsubscribe := app.Toasts.Subscribe(sp.observe)
	defer unsubscribe()

	for _, r := range reqs {
		sev, _ := notify.ParseSeverity(r.Severity)
		var opts []toast.NotifyOption
		if r.Duration != "" {
			d, _ := time.ParseDuration(r.Duration)
			opts = append(opts, toast.WithDuration(d))
		}
		app.Toasts.Notify(r.Message, sev, opts...)
	}

	if !sp.waitFor(ctx, len(reqs), time.Second) {
		return fmt.Errorf("toasts were not displayed")
	}
	return sp.waitIdle(ctx)
}

// requests builds the toast list from flags or the batch file and
// validates every entry.
func (cmd *NotifyCmd) requests(message string) ([]toastRequest, error) {
	var reqs []toastRequest
	if cmd.batch.IsSet() {
		var err error
		reqs, err = cmd.batch.Read(os.Stdin)
		if err != nil {
			return nil, err
		}
		if len(reqs) == 0 {
			return nil, errors.New("toast batch is empty")
		}
	} else {
		r := toastRequest{Message: message, Severity: cmd.severity}
		switch {
		case cmd.sticky:
			r.Duration = "0s"
		case cmd.duration != 0:
			r.Duration = cmd.duration.String()
		}
		reqs = []toastRequest{r}
	}

	for i := range reqs {
		if reqs[i].Severity == "" {
			reqs[i].Severity = string(notify.SeverityInfo)
		}
		if err := validateRequest(reqs[i]); err != nil {
			if len(reqs) > 1 {
				return nil, fmt.Errorf("toast %d: %w", i, err)
			}
			return nil, err
		}
	}
	return reqs, nil
}

func validateRequest(r toastRequest) error {
	return criterio.ValidateStruct(
		criterio.Run("message", r.Message, validate.Required),
		criterio.Run("severity", r.Severity, func(s string) error {
			_, err := notify.ParseSeverity(s)
			return err
		}),
		criterio.Run("duration", r.Duration, func(s string) error {
			if s == "" {
				return nil
			}
			d, err := time.ParseDuration(s)
			if err != nil {
				return err
			}
			if d < 0 {
				return errors.New("cannot be negative")
			}
			return nil
		}),
	)
}
