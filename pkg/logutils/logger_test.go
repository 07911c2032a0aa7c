package logutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_writes_json_to_file(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "toastboard.log")

	logger, closer, err := New("debug", file)
	require.NoError(t, err)

	logger.Info().Str("cmp", "test").Msg("hello")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"cmp":"test"`)
}

func TestNew_invalid_level(t *testing.T) {
	_, closer, err := New("loud", "")
	require.Error(t, err)
	assert.NotNil(t, closer)
}
