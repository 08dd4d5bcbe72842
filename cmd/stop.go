package cmd

import (
	"PowerManager/internal/utils/daemon"
	"fmt"

	"github.com/spf13/cobra"
)

// stopCmd stops the background feed
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the background feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		pidFile, err := resolvePIDFile()
		if err != nil {
			return err
		}

		pid, err := daemon.StopProcess(pidFile)
		if err != nil {
			return fmt.Errorf("failed to stop feed: %w", err)
		}
		fmt.Printf("Feed (PID: %d) has been stopped\n", pid)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
