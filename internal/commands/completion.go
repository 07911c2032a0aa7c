package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/toastboard/internal/core/notify"
)

// SeverityCompleter returns a ShellCompleteFunc that suggests severities
// as positional completions.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func SeverityCompleter() cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		// Delegate to default flag completion when typing a flag
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		w := cmd.Root().Writer
		for _, s := range notify.Severities() {
			_, _ = fmt.Fprintln(w, s)
		}
	}
}
