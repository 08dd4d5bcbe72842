package startup

import (
	"PowerManager/internal/app"
	"PowerManager/internal/pkg/config"
	"PowerManager/internal/pkg/logger"
	"PowerManager/internal/utils/finder"
	"fmt"
	"os"
)

// InitializeApplication initializes the application with the given config path.
// A missing config file falls back to the built-in defaults.
func InitializeApplication(configPath string) *app.Application {
	foundConfigPath, err := finder.FindConfigFile(configPath)
	if err != nil {
		logger.Error("Failed to find configuration", logger.Err(err))
		fmt.Fprintf(os.Stderr, "failed to find configuration: %v\n", err)
		os.Exit(1)
	}

	if foundConfigPath != "" {
		logger.Info("Using configuration file", logger.String("path", foundConfigPath))
	}

	application := app.New(foundConfigPath)
	if err := application.Initialize(); err != nil {
		logger.Error("Failed to initialize application", logger.Err(err))
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}

	return application
}

// SetupDefaultLogger initializes a default logger for early startup
func SetupDefaultLogger() {
	cfg := config.GetDefaultConfig()
	cfg.Logs.FilePath = ""
	cfg.Logs.Stdout = false
	if err := logger.Init(cfg); err != nil {
		panic("Error initializing logger: " + err.Error())
	}
}
