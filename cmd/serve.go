package cmd

import (
	"PowerManager/internal/startup"
	"PowerManager/internal/utils/daemon"
	"PowerManager/internal/utils/signal"
	"fmt"

	"github.com/spf13/cobra"
)

var foreground bool

// serveCmd runs the feed without the applet
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the CPU usage feed without the applet",
	Long:  `Sample CPU usage once per second and publish it over HTTP and WebSocket, in the foreground or as a daemon.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application := startup.InitializeApplication(configPath)
		cfg := application.GetConfig()
		cfg.Server.Enabled = true
		pidFile := cfg.Daemon.PIDFile

		if !foreground && !daemon.IsChild() {
			if daemon.IsRunning(pidFile) {
				return fmt.Errorf("feed is already running (PID file exists at %s)", pidFile)
			}
			pid, err := daemon.Daemonize(application.GetConfigPath())
			if err != nil {
				return err
			}
			fmt.Printf("Feed started in background (PID: %d)\n", pid)
			return nil
		}

		if daemon.IsChild() {
			if err := daemon.WritePIDFile(pidFile); err != nil {
				return err
			}
			signal.RegisterCleanupFunc(func() {
				daemon.RemovePIDFile(pidFile)
			})
		}

		builder := startup.StartServer(application, true)
		signal.HandleSignals(application, builder)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVarP(&foreground, "foreground", "f", false, "Run in foreground (not as daemon)")
}
