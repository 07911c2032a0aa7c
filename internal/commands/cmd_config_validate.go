package commands

import (
	"context"
	"errors"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/toastboard/internal/core/config"
	"github.com/colonyops/toastboard/internal/printer"
	"github.com/colonyops/toastboard/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "toastboard config validate [options]",
				Description: "Loads the configuration file and reports every invalid field.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	issues := cmd.validate()

	if cmd.format == "json" {
		out := struct {
			Valid  bool              `json:"valid"`
			Path   string            `json:"path"`
			Errors []validationIssue `json:"errors,omitempty"`
		}{
			Valid:  len(issues) == 0,
			Path:   cmd.flags.ConfigPath,
			Errors: issues,
		}
		if err := iojson.Write(c.Root().Writer, out); err != nil {
			return err
		}
		if len(issues) > 0 {
			return cli.Exit("", 1)
		}
		return nil
	}

	p := printer.Ctx(ctx)
	for _, issue := range issues {
		p.Errorf("%s: %s", issue.Field, issue.Message)
	}
	if len(issues) == 0 {
		p.Successf("Configuration is valid (%s)", cmd.flags.ConfigPath)
		return nil
	}
	p.Errorf("%d error(s) found", len(issues))
	return cli.Exit("", 1)
}

// validate loads the file directly rather than using the config from the
// Before hook, which is nil when the file is invalid.
func (cmd *ConfigValidateCmd) validate() []validationIssue {
	cfg, err := config.Load(cmd.flags.ConfigPath, cmd.flags.DataDir)
	if err == nil {
		err = cfg.ValidateDeep(cmd.flags.ConfigPath)
	}
	return issuesFrom(err)
}

func issuesFrom(err error) []validationIssue {
	if err == nil {
		return nil
	}
	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		out := make([]validationIssue, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			out = append(out, validationIssue{Field: fe.Field, Message: fe.Err.Error()})
		}
		return out
	}
	return []validationIssue{{Field: "config", Message: err.Error()}}
}
