package finder

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigName is looked up in the user config directory when no path is given
const DefaultConfigName = "power_manager/config.yaml"

// FindConfigFile resolves the configuration file to an absolute path.
// An explicit path must exist. With no path, the user config directory is
// searched and "" is returned when nothing is found.
func FindConfigFile(configPath string) (string, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return "", fmt.Errorf("configuration file not found: %s", configPath)
		}
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		return absPath, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", nil
	}

	candidate := filepath.Join(dir, DefaultConfigName)
	if _, err := os.Stat(candidate); err != nil {
		return "", nil
	}
	return candidate, nil
}
