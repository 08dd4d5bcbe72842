package startup

import (
	"PowerManager/internal/api/router"
	"PowerManager/internal/app"
	"PowerManager/internal/pkg/logger"
)

// StartServer builds the feed server and runs it in a goroutine.
// It returns nil when the feed is disabled in the configuration.
func StartServer(application *app.Application, ownMonitor bool) *router.Builder {
	cfg := application.GetConfig()
	if !cfg.Server.Enabled {
		return nil
	}

	builder := router.NewBuilder(cfg, application.Monitor()).
		WithAllRoutes()
	if ownMonitor {
		builder = builder.WithMonitoring()
	}

	go func() {
		if err := builder.Start(); err != nil {
			logger.Error("Feed server stopped", logger.Err(err))
		}
	}()

	return builder
}
