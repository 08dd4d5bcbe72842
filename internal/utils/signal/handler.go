package signal

import (
	"PowerManager/internal/api/router"
	"PowerManager/internal/app"
	"PowerManager/internal/pkg/logger"
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const shutdownTimeout = 5 * time.Second

var (
	cleanupMu    sync.Mutex
	cleanupFuncs []func()
)

// RegisterCleanupFunc registers a function run after shutdown
func RegisterCleanupFunc(fn func()) {
	cleanupMu.Lock()
	defer cleanupMu.Unlock()
	cleanupFuncs = append(cleanupFuncs, fn)
}

// HandleSignals blocks until SIGINT or SIGTERM, then shuts everything down
func HandleSignals(application *app.Application, builder *router.Builder) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	for sig := range sigChan {
		switch sig {
		case syscall.SIGINT, syscall.SIGTERM:
			logger.Info("Received termination signal, shutting down...",
				logger.String("signal", sig.String()))
			Shutdown(application, builder)
			return
		case syscall.SIGHUP:
			logger.Info("Received SIGHUP; configuration is read at startup only, ignoring")
		}
	}
}

// Shutdown stops the feed server and the application, then runs cleanup functions
func Shutdown(application *app.Application, builder *router.Builder) {
	if builder != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		builder.Shutdown(ctx)
		cancel()
	}

	application.Shutdown()

	cleanupMu.Lock()
	fns := cleanupFuncs
	cleanupFuncs = nil
	cleanupMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
