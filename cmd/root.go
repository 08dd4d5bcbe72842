package cmd

import (
	"fmt"
	"os"

	"PowerManager/internal/startup"

	"github.com/spf13/cobra"
)

var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "power_manager",
	Short: "A panel applet showing per-core CPU usage",
	Long: `PowerManager samples per-core CPU utilization once per second and shows
the aggregate and per-core usage in a popup toggled from its icon button.
It can also publish the samples over a local HTTP/WebSocket feed.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApplet()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Initialize default logger for early startup
	startup.SetupDefaultLogger()

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: user config dir)")
}
