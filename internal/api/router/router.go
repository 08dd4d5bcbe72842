package router

import (
	"PowerManager/internal/api/handlers"
	"PowerManager/internal/api/middleware"
	"PowerManager/internal/api/router/routes/auth"
	cpuRoutes "PowerManager/internal/api/router/routes/cpu"
	"PowerManager/internal/api/router/routes/websocket"
	"PowerManager/internal/monitoring/cpu"
	"PowerManager/internal/pkg/config"
	"PowerManager/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router encapsulates the feed HTTP routes
type Router struct {
	config     *config.Config
	engine     *gin.Engine
	cpuHandler *handlers.CPUHandler
	cpuMonitor *cpu.Monitor
}

// New creates a new router instance with the given configuration
func New(cfg *config.Config, cpuMonitor *cpu.Monitor) *Router {
	if cfg.Logs.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	return &Router{
		config:     cfg,
		engine:     gin.New(),
		cpuHandler: handlers.NewCPUHandler(cpuMonitor),
		cpuMonitor: cpuMonitor,
	}
}

// Initialize sets up the router with middlewares and routes
func (r *Router) Initialize() *Router {
	r.engine.Use(gin.Recovery())
	r.engine.Use(LoggerMiddleware())
	r.engine.NoRoute(handlers.NotFound)

	r.registerRootAPIEndpoint()

	protected := r.engine.Group("")
	if r.config.API.Auth.Enabled {
		auth.RegisterRoutes(r.engine, r.config)
		protected.Use(middleware.JWTAuthMiddleware(r.config.API.Auth.JWTSecret))
	}

	cpuRoutes.RegisterRoutes(protected.Group("/api"), r.cpuHandler)
	websocket.RegisterWebSocketRoutes(protected, r.cpuMonitor)

	for _, route := range r.engine.Routes() {
		logger.Debug("Registered route",
			logger.String("method", route.Method),
			logger.String("path", route.Path))
	}

	return r
}

// registerRootAPIEndpoint provides unauthenticated status endpoints
func (r *Router) registerRootAPIEndpoint() {
	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"app":     r.config.AppName,
			"version": "1.0",
		})
	})

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
		})
	})
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.engine.ServeHTTP(w, req)
}

// LoggerMiddleware creates a middleware for logging HTTP requests
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Header.Get("Upgrade") == "websocket" {
			c.Next()
			return
		}

		c.Next()

		logger.Debug("HTTP Request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.String("client_ip", c.ClientIP()),
		)
	}
}
