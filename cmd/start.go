package cmd

import (
	"PowerManager/internal/applet"
	"PowerManager/internal/monitoring/cpu"
	"PowerManager/internal/pkg/logger"
	"PowerManager/internal/startup"
	"PowerManager/internal/utils/signal"

	"github.com/spf13/cobra"
)

var withFeed bool

// startCmd runs the applet in the terminal
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the applet",
	Long:  `Start the CPU usage applet. Press space to toggle the popup, esc to close it, q to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApplet()
	},
}

func runApplet() error {
	application := startup.InitializeApplication(configPath)
	cfg := application.GetConfig()
	if withFeed {
		cfg.Server.Enabled = true
	}

	// The applet's tick drives the monitor, so the feed must not start a second ticker
	builder := startup.StartServer(application, false)
	defer signal.Shutdown(application, builder)

	host, err := cpu.GetHostInfo()
	if err != nil {
		logger.Warn("Processor details unavailable", logger.Err(err))
	}

	return applet.Run(cfg, application.Monitor(), host)
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().BoolVar(&withFeed, "feed", false, "Also serve the local HTTP/WebSocket feed")
}
