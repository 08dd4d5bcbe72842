package cmd

import (
	"PowerManager/internal/pkg/config"
	"PowerManager/internal/utils/finder"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var overwriteConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

// configInitCmd writes the default configuration so it can be edited
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := configPath
		if target == "" {
			dir, err := os.UserConfigDir()
			if err != nil {
				return fmt.Errorf("failed to locate user config directory: %w", err)
			}
			target = filepath.Join(dir, finder.DefaultConfigName)
		}

		if _, err := os.Stat(target); err == nil && !overwriteConfig {
			return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", target)
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := config.SaveConfig(config.GetDefaultConfig(), target); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", target)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVarP(&overwriteConfig, "force", "f", false, "Overwrite an existing file")
}
