package commands

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/toastboard/internal/core/catalog"
	"github.com/colonyops/toastboard/internal/core/toast"
	"github.com/colonyops/toastboard/internal/printer"
)

type DemoCmd struct {
	flags *Flags
	step  time.Duration
	plain bool
}

// NewDemoCmd creates a new demo command.
func NewDemoCmd(flags *Flags) *DemoCmd {
	return &DemoCmd{flags: flags}
}

// Register adds the demo command to the application.
func (cmd *DemoCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "demo",
		Usage:     "Run a scripted toast sequence without the dashboard",
		UsageText: "toastboard demo [options]",
		Description: `Drives the product and account services through a fixed script and prints
every toast snapshot until all expiring toasts are gone.`,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:        "step",
				Usage:       "pause between script steps",
				Value:       500 * time.Millisecond,
				Destination: &cmd.step,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "disable colors even on a terminal",
				Destination: &cmd.plain,
			},
		},
		Action: cmd.run,
	})
	return app
}

type demoStep struct {
	name string
	run  func(ctx context.Context) error
}

func (cmd *DemoCmd) run(ctx context.Context, _ *cli.Command) error {
	app := cmd.flags.App
	p := printer.Ctx(ctx)
	if cmd.plain && !p.Plain() {
		p = printer.New(os.Stdout, true)
	}

	sp := newSnapshotPrinter(app, p)
	unsubscribe := app.Toasts.Subscribe(sp.observe)
	defer unsubscribe()

	var token string
	var created catalog.Product

	steps := []demoStep{
		{"log in", func(ctx context.Context) error {
			var err error
			token, err = app.DemoLogin(ctx)
			return err
		}},
		{"add product", func(ctx context.Context) error {
			var err error
			created, _, err = app.Products.Save(ctx, token, catalog.Product{
				ID:       catalog.TempIDPrefix + "demo",
				Name:     "Cold Brew Kit",
				Price:    24.99,
				Category: "Kitchen",
			})
			return err
		}},
		{"update product", func(ctx context.Context) error {
			created.Price = 19.99
			_, _, err := app.Products.Save(ctx, token, created)
			return err
		}},
		{"submit invalid product", func(ctx context.Context) error {
			_, _, _ = app.Products.Save(ctx, token, catalog.Product{Price: -5})
			return nil
		}},
		{"sticky reminder", func(context.Context) error {
			app.Toasts.Info("Sticky reminders stay until dismissed", toast.Sticky())
			return nil
		}},
		{"delete while logged out", func(ctx context.Context) error {
			app.Accounts.Logout(token)
			_ = app.Products.Delete(ctx, token, created.ID)
			return nil
		}},
		{"warning", func(context.Context) error {
			app.Toasts.Warning("Inventory sync is running behind")
			return nil
		}},
		{"dismiss sticky", func(context.Context) error {
			for _, n := range app.Toasts.List() {
				if n.Sticky() {
					app.Toasts.Dismiss(n.ID)
				}
			}
			return nil
		}},
	}

	for _, s := range steps {
		p.Printf("> %s", s.name)
		if err := s.run(ctx); err != nil {
			log.Warn().Err(err).Str("step", s.name).Msg("demo step failed")
			p.Errorf("%s: %v", s.name, err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(cmd.step):
		}
	}

	if err := sp.waitIdle(ctx); err != nil {
		return err
	}
	p.Successf("All toasts expired after %d snapshots", sp.snapshots())
	return nil
}
