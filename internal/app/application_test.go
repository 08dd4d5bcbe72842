package app

import (
	"PowerManager/internal/pkg/config"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietConfig() *config.Config {
	cfg := config.GetDefaultConfig()
	cfg.Logs.Enabled = false
	return cfg
}

func TestInitializeWith(t *testing.T) {
	application := New("")
	require.NoError(t, application.InitializeWith(quietConfig()))

	assert.NotNil(t, application.Monitor())
	assert.Equal(t, "PowerManager", application.GetConfig().AppName)
	assert.Empty(t, application.GetConfigPath())

	application.Shutdown()
	assert.NotPanics(t, application.Shutdown, "second shutdown is a no-op")
}

func TestInitializeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logs:\n  enabled: false\napplet:\n  icon: \"#\"\n"), 0644))

	application := New(path)
	require.NoError(t, application.Initialize())
	defer application.Shutdown()

	assert.Equal(t, "#", application.GetConfig().Applet.Icon)
	assert.Equal(t, path, application.GetConfigPath())
}

func TestInitializeInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  enabled: true\n  port: 0\n"), 0644))

	assert.Error(t, New(path).Initialize())
}
