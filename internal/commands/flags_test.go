package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigPath_uses_xdg(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	assert.Equal(t, filepath.Join("/tmp/xdg-config", "toastboard", "config.yaml"), DefaultConfigPath())
}

func TestDefaultDataDir_uses_xdg(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	assert.Equal(t, filepath.Join("/tmp/xdg-data", "toastboard"), DefaultDataDir())
}

func TestDefaultLogFile(t *testing.T) {
	assert.Equal(t, filepath.Join("/data", "toastboard.log"), DefaultLogFile("/data"))
}
