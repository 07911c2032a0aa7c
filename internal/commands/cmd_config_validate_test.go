package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func runConfigValidate(t *testing.T, configBody string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configBody), 0o644))

	flags := &Flags{ConfigPath: path, DataDir: dir}
	var out bytes.Buffer
	root := &cli.Command{
		Name:   "toastboard",
		Writer: &out,
		// Keep cli.Exit from terminating the test binary.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	root = NewConfigValidateCmd(flags).Register(root)

	err := root.Run(context.Background(), append([]string{"toastboard", "config", "validate"}, args...))
	return out.String(), err
}

func TestConfigValidate_json_valid(t *testing.T) {
	out, err := runConfigValidate(t, "toasts:\n  capacity: 3\n", "--format", "json")
	require.NoError(t, err)

	var res struct {
		Valid bool `json:"valid"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Valid)
}

func TestConfigValidate_json_reports_fields(t *testing.T) {
	out, err := runConfigValidate(t, "toasts:\n  capacity: -1\n  order: sideways\n", "--format", "json")
	require.Error(t, err)

	var res struct {
		Valid  bool              `json:"valid"`
		Errors []validationIssue `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Valid)

	fields := make([]string, 0, len(res.Errors))
	for _, e := range res.Errors {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"toasts.capacity", "toasts.order"}, fields)
}

func TestIssuesFrom_plain_error(t *testing.T) {
	issues := issuesFrom(assert.AnError)
	require.Len(t, issues, 1)
	assert.Equal(t, "config", issues[0].Field)
	assert.Nil(t, issuesFrom(nil))
}
