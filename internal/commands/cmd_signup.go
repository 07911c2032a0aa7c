package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/toastboard/internal/core/notify"
	"github.com/colonyops/toastboard/internal/core/validate"
	"github.com/colonyops/toastboard/internal/printer"
)

// signupToastWait bounds how long signup waits for the outcome toast.
const signupToastWait = time.Second

type SignupCmd struct {
	flags    *Flags
	name     string
	email    string
	password string
}

// NewSignupCmd creates a new signup command.
func NewSignupCmd(flags *Flags) *SignupCmd {
	return &SignupCmd{flags: flags}
}

// Register adds the signup command to the application.
func (cmd *SignupCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "signup",
		Usage:     "Register an account and show the resulting toast",
		UsageText: "toastboard signup [--name NAME --email EMAIL --password PASSWORD]",
		Description: `Registers an account with the in-memory account service. Missing fields are
collected with an interactive form when stdin is a terminal.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Usage:       "display name",
				Destination: &cmd.name,
			},
			&cli.StringFlag{
				Name:        "email",
				Usage:       "email address",
				Destination: &cmd.email,
			},
			&cli.StringFlag{
				Name:        "password",
				Usage:       "password (at least 6 characters)",
				Sources:     cli.EnvVars("TOASTBOARD_PASSWORD"),
				Destination: &cmd.password,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *SignupCmd) run(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)

	if cmd.missingFields() && printer.IsTerminal(os.Stdin) {
		if err := cmd.runForm(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	app := cmd.flags.App

	order := app.Store.Order()
	outcome := make(chan notify.Notification, 1)
	unsubscribe := app.Toasts.Subscribe(func(snapshot []notify.Notification) {
		if n, ok := newest(snapshot, order); ok {
			select {
			case outcome <- n:
			default:
			}
		}
	})
	defer unsubscribe()

	regErr := app.Accounts.Register(ctx, cmd.name, cmd.email, cmd.password)

	select {
	case n := <-outcome:
		printToast(p, n)
	case <-time.After(signupToastWait):
	case <-ctx.Done():
		return ctx.Err()
	}

	if regErr != nil {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *SignupCmd) missingFields() bool {
	return cmd.name == "" || cmd.email == "" || cmd.password == ""
}

func (cmd *SignupCmd) runForm(ctx context.Context) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Validate(validate.Required).
				Value(&cmd.name),
			huh.NewInput().
				Title("Email").
				Validate(validate.Email).
				Value(&cmd.email),
			huh.NewInput().
				Title("Password").
				Description(fmt.Sprintf("At least %d characters", validate.MinPasswordLength)).
				EchoMode(huh.EchoModePassword).
				Validate(validate.Password).
				Value(&cmd.password),
		),
	).WithTheme(huh.ThemeCharm()).RunWithContext(ctx)
}

// newest returns the most recently admitted toast of a snapshot listed in
// order.
func newest(snapshot []notify.Notification, order notify.Order) (notify.Notification, bool) {
	if len(snapshot) == 0 {
		return notify.Notification{}, false
	}
	if order == notify.NewestFirst {
		return snapshot[0], true
	}
	return snapshot[len(snapshot)-1], true
}

func printToast(p *printer.Printer, n notify.Notification) {
	switch n.Severity {
	case notify.SeveritySuccess:
		p.Successf("%s", n.Message)
	case notify.SeverityError:
		p.Errorf("%s", n.Message)
	case notify.SeverityWarning:
		p.Warnf("%s", n.Message)
	default:
		p.Infof("%s", n.Message)
	}
}
