package router

import (
	"PowerManager/internal/monitoring/cpu"
	"PowerManager/internal/pkg/config"
	"PowerManager/internal/pkg/logger"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Builder provides a fluent interface for constructing the feed server
type Builder struct {
	router *Router
	config *config.Config
	server *http.Server

	// set when the builder drives the monitor itself (headless feed)
	ownsMonitor bool
	monitor     *cpu.Monitor
}

// NewBuilder creates a builder serving the given monitor
func NewBuilder(cfg *config.Config, monitor *cpu.Monitor) *Builder {
	b := &Builder{
		router:  New(cfg, monitor),
		config:  cfg,
		monitor: monitor,
	}

	b.server = &http.Server{
		Addr:           b.Address(),
		Handler:        b.router,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return b
}

// WithMonitoring makes the builder start and stop the monitor's own ticker
func (b *Builder) WithMonitoring() *Builder {
	b.ownsMonitor = true
	return b
}

// WithAllRoutes adds all routes and initializes the router
func (b *Builder) WithAllRoutes() *Builder {
	b.router.Initialize()
	return b
}

// GetRouter returns the underlying router
func (b *Builder) GetRouter() *Router {
	return b.router
}

// Address returns the host:port the server listens on
func (b *Builder) Address() string {
	return fmt.Sprintf("%s:%d", b.config.Server.Host, b.config.Server.Port)
}

// Start runs the HTTP server until Shutdown is called
func (b *Builder) Start() error {
	if b.ownsMonitor {
		if err := b.monitor.StartMonitoring(); err != nil {
			return fmt.Errorf("failed to start CPU monitor: %w", err)
		}
	}

	logger.Info("Starting HTTP server", logger.String("address", b.server.Addr))

	if err := b.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to start HTTP server", logger.Err(err))
		return err
	}
	return nil
}

// Shutdown stops the server and, when owned, the monitor
func (b *Builder) Shutdown(ctx context.Context) {
	if err := b.server.Shutdown(ctx); err != nil {
		logger.Warn("HTTP server shutdown incomplete", logger.Err(err))
	}

	if b.ownsMonitor {
		b.monitor.StopMonitoring()
		logger.Info("Stopped CPU monitoring service")
	}
}
