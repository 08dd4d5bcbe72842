package daemon

import (
	"PowerManager/internal/pkg/logger"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// EnvChild marks the re-executed background process
const EnvChild = "POWER_MANAGER_DAEMON"

// ErrNotRunning is returned when no live process owns the PID file
var ErrNotRunning = errors.New("service is not running")

// IsChild reports whether this process was started by Daemonize
func IsChild() bool {
	return os.Getenv(EnvChild) == "1"
}

// readPID parses the PID stored in pidFile
func readPID(pidFile string) (int, error) {
	data, err := os.ReadFile(pidFile)
	if err != nil {
		return 0, err
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid PID in file: %w", err)
	}
	return pid, nil
}

// alive sends signal 0, which only checks that the process exists
func alive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}

// IsRunning checks if the service is already running
func IsRunning(pidFile string) bool {
	running, _ := GetStatus(pidFile)
	return running
}

// Daemonize re-executes the binary as a detached "serve" process and returns its PID
func Daemonize(configPath string) (int, error) {
	executable, err := os.Executable()
	if err != nil {
		return 0, fmt.Errorf("failed to get executable path: %w", err)
	}

	args := []string{"serve"}
	if configPath != "" {
		args = append(args, "--config", configPath)
	}

	cmd := exec.Command(executable, args...)
	cmd.Env = append(os.Environ(), EnvChild+"=1")
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start daemon process: %w", err)
	}

	pid := cmd.Process.Pid
	logger.Info("Started daemon process", logger.Int("pid", pid))

	// The child outlives us; release it so no zombie is left if we linger
	_ = cmd.Process.Release()
	return pid, nil
}

// WritePIDFile writes the current process ID to the specified file
func WritePIDFile(pidFile string) error {
	if err := os.MkdirAll(filepath.Dir(pidFile), 0755); err != nil {
		return fmt.Errorf("failed to create directory for PID file: %w", err)
	}

	pid := os.Getpid()
	if err := os.WriteFile(pidFile, []byte(strconv.Itoa(pid)), 0644); err != nil {
		return fmt.Errorf("failed to write PID file: %w", err)
	}

	logger.Info("Wrote PID to file",
		logger.Int("pid", pid),
		logger.String("file", pidFile))
	return nil
}

// RemovePIDFile removes the PID file during shutdown
func RemovePIDFile(pidFile string) {
	if err := os.Remove(pidFile); err != nil && !os.IsNotExist(err) {
		logger.Error("Failed to remove PID file during shutdown",
			logger.Err(err),
			logger.String("file", pidFile))
		return
	}
	logger.Info("Removed PID file during shutdown", logger.String("file", pidFile))
}

// StopProcess sends SIGTERM to the process owning pidFile and removes the file
func StopProcess(pidFile string) (int, error) {
	pid, err := readPID(pidFile)
	if os.IsNotExist(err) {
		return 0, fmt.Errorf("%w (PID file not found)", ErrNotRunning)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read PID file: %w", err)
	}

	if !alive(pid) {
		os.Remove(pidFile)
		return 0, fmt.Errorf("%w (stale PID %d)", ErrNotRunning, pid)
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return 0, fmt.Errorf("failed to find process: %w", err)
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		return 0, fmt.Errorf("failed to send terminate signal: %w", err)
	}

	if err := os.Remove(pidFile); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to remove PID file after stopping process",
			logger.Err(err),
			logger.String("file", pidFile))
	}

	return pid, nil
}

// GetStatus checks if the service is running and returns the PID.
// A PID file pointing at a dead process is removed.
func GetStatus(pidFile string) (bool, int) {
	pid, err := readPID(pidFile)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Error("Failed to read PID file",
				logger.Err(err),
				logger.String("file", pidFile))
		}
		return false, 0
	}

	if alive(pid) {
		return true, pid
	}

	os.Remove(pidFile)
	return false, 0
}
