package daemon

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndStatus(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "run", "feed.pid")
	require.NoError(t, WritePIDFile(pidFile))

	running, pid := GetStatus(pidFile)
	assert.True(t, running)
	assert.Equal(t, os.Getpid(), pid)
	assert.True(t, IsRunning(pidFile))

	RemovePIDFile(pidFile)
	assert.NoFileExists(t, pidFile)
}

func TestStatusMissingFile(t *testing.T) {
	running, pid := GetStatus(filepath.Join(t.TempDir(), "absent.pid"))
	assert.False(t, running)
	assert.Zero(t, pid)
}

func TestStatusGarbageFile(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "feed.pid")
	require.NoError(t, os.WriteFile(pidFile, []byte("not-a-pid"), 0644))

	running, _ := GetStatus(pidFile)
	assert.False(t, running)
}

func TestStopMissingFile(t *testing.T) {
	_, err := StopProcess(filepath.Join(t.TempDir(), "absent.pid"))
	assert.ErrorIs(t, err, ErrNotRunning)
}

func TestStopStalePID(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "feed.pid")
	// PIDs are capped well below this on Linux
	require.NoError(t, os.WriteFile(pidFile, []byte(strconv.Itoa(1<<30)), 0644))

	_, err := StopProcess(pidFile)
	assert.ErrorIs(t, err, ErrNotRunning)
	assert.NoFileExists(t, pidFile)
}

func TestIsChild(t *testing.T) {
	t.Setenv(EnvChild, "1")
	assert.True(t, IsChild())

	t.Setenv(EnvChild, "")
	assert.False(t, IsChild())
}
