package commands

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"golang.org/x/crypto/bcrypt"

	"github.com/colonyops/toastboard/internal/board"
	"github.com/colonyops/toastboard/internal/core/config"
	"github.com/colonyops/toastboard/internal/core/toast"
	"github.com/colonyops/toastboard/internal/printer"
)

// fastDurations keeps expiring toasts short enough for real-clock tests.
var fastDurations = toast.Durations{
	Success: 40 * time.Millisecond,
	Error:   60 * time.Millisecond,
	Warning: 50 * time.Millisecond,
	Info:    30 * time.Millisecond,
}

func newTestFlags(t *testing.T) *Flags {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Toasts.Durations = fastDurations

	app, err := board.New(context.Background(), &cfg, board.Options{BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	t.Cleanup(app.Close)

	return &Flags{DataDir: cfg.DataDir, Config: &cfg, App: app}
}

type registrar interface {
	Register(app *cli.Command) *cli.Command
}

// runCommand runs args against a root command with r registered. Output
// is captured from a plain printer.
func runCommand(t *testing.T, r registrar, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := &cli.Command{
		Name:   "toastboard",
		Writer: &out,
		// Keep cli.Exit from terminating the test binary.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	root = r.Register(root)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ctx = printer.NewContext(ctx, printer.New(&out, true))

	err := root.Run(ctx, append([]string{"toastboard"}, args...))
	return out.String(), err
}
