package app

import (
	"PowerManager/internal/monitoring/cpu"
	"PowerManager/internal/pkg/config"
	"PowerManager/internal/pkg/logger"
	"fmt"
)

// Application owns the configuration and the CPU monitor shared by the
// applet and the feed server
type Application struct {
	configPath string
	config     *config.Config
	monitor    *cpu.Monitor
	isRunning  bool
}

// New creates a new application instance. An empty configPath runs on defaults.
func New(configPath string) *Application {
	return &Application{
		configPath: configPath,
	}
}

// Initialize loads configuration and initializes components
func (a *Application) Initialize() error {
	cfg := config.GetDefaultConfig()
	if a.configPath != "" {
		loaded, err := config.LoadConfig(a.configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}
	return a.InitializeWith(cfg)
}

// InitializeWith initializes components from an already built configuration
func (a *Application) InitializeWith(cfg *config.Config) error {
	a.config = cfg

	if err := logger.Init(cfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.monitor = cpu.NewMonitor()
	a.isRunning = true

	logger.Info("Application initialized successfully",
		logger.String("config", a.configPath))
	return nil
}

// GetConfig returns the application configuration
func (a *Application) GetConfig() *config.Config {
	return a.config
}

// GetConfigPath returns the path to the configuration file
func (a *Application) GetConfigPath() string {
	return a.configPath
}

// Monitor returns the CPU monitor
func (a *Application) Monitor() *cpu.Monitor {
	return a.monitor
}

// Shutdown stops the monitor and flushes the logs
func (a *Application) Shutdown() {
	if !a.isRunning {
		return
	}

	logger.Info("Shutting down application...")

	if a.monitor != nil {
		a.monitor.StopMonitoring()
	}

	a.isRunning = false
	logger.Info("Application shutdown complete")

	// Sync on a console writer returns EINVAL on some platforms; nothing to report
	_ = logger.Sync()
}
