package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_prints_until_expired(t *testing.T) {
	flags := newTestFlags(t)

	out, err := runCommand(t, NewNotifyCmd(flags), "notify", "--severity", "warning", "disk", "almost", "full")
	require.NoError(t, err)

	assert.Contains(t, out, "! warning disk almost full")
	assert.Contains(t, out, "1 visible")
	assert.Contains(t, out, "0 visible")
	assert.Empty(t, flags.App.Toasts.List())
}

func TestNotify_sticky_returns_after_first_snapshot(t *testing.T) {
	flags := newTestFlags(t)

	out, err := runCommand(t, NewNotifyCmd(flags), "notify", "--sticky", "pinned")
	require.NoError(t, err)

	assert.Contains(t, out, "(sticky)")
	require.Len(t, flags.App.Toasts.List(), 1)
	assert.True(t, flags.App.Toasts.List()[0].Sticky())
}

func TestNotify_batch_file(t *testing.T) {
	flags := newTestFlags(t)
	path := filepath.Join(t.TempDir(), "toasts.json")
	body := `[
  {"message": "first", "severity": "success"},
  {"message": "second", "severity": "error", "duration": "20ms"}
]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	out, err := runCommand(t, NewNotifyCmd(flags), "notify", "--file", path)
	require.NoError(t, err)

	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.Contains(t, out, "2 visible")
}

func TestNotify_requires_message(t *testing.T) {
	flags := newTestFlags(t)

	_, err := runCommand(t, NewNotifyCmd(flags), "notify")
	require.Error(t, err)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "message", fieldErrs[0].Field)
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name  string
		req   toastRequest
		field string
	}{
		{name: "valid", req: toastRequest{Message: "hi", Severity: "info"}},
		{name: "valid duration", req: toastRequest{Message: "hi", Severity: "error", Duration: "2s"}},
		{name: "unknown severity", req: toastRequest{Message: "hi", Severity: "loud"}, field: "severity"},
		{name: "bad duration", req: toastRequest{Message: "hi", Severity: "info", Duration: "soon"}, field: "duration"},
		{name: "negative duration", req: toastRequest{Message: "hi", Severity: "info", Duration: "-1s"}, field: "duration"},
		{name: "blank message", req: toastRequest{Message: "  ", Severity: "info"}, field: "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(tt.req)
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.field, fieldErrs[0].Field)
		})
	}
}

func TestNotifyCmd_requests_from_flags(t *testing.T) {
	cmd := &NotifyCmd{severity: "error", duration: 3 * time.Second}
	reqs, err := cmd.requests("boom")
	require.NoError(t, err)
	assert.Equal(t, []toastRequest{{Message: "boom", Severity: "error", Duration: "3s"}}, reqs)

	cmd = &NotifyCmd{severity: "info", sticky: true, duration: time.Second}
	reqs, err = cmd.requests("pinned")
	require.NoError(t, err)
	assert.Equal(t, "0s", reqs[0].Duration)
}
