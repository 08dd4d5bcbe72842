package cmd

import (
	"PowerManager/internal/pkg/config"
	"PowerManager/internal/utils/daemon"
	"fmt"

	"github.com/spf13/cobra"
)

// statusCmd reports whether the background feed is running
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the status of the background feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		pidFile, err := resolvePIDFile()
		if err != nil {
			return err
		}

		running, pid := daemon.GetStatus(pidFile)
		if running {
			fmt.Printf("Feed is running (PID: %d)\n", pid)
		} else {
			fmt.Println("Feed is not running")
		}
		return nil
	},
}

// resolvePIDFile reads the PID file location without initializing the application
func resolvePIDFile() (string, error) {
	if configPath == "" {
		return config.GetDefaultConfig().Daemon.PIDFile, nil
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return "", err
	}
	return cfg.Daemon.PIDFile, nil
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
