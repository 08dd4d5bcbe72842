package cpu

import (
	"PowerManager/internal/pkg/logger"
	"PowerManager/internal/websocket"

	"github.com/gin-gonic/gin"
)

// WebSocketHandler attaches a client to the CPU feed and sends it the current snapshot
func (m *Monitor) WebSocketHandler(c *gin.Context) {
	registry := websocket.GetRegistry()
	handler := registry.GetCPUHandler()

	if handler == nil {
		handler = websocket.NewHandler()
		registry.RegisterCPUHandler(handler)
	}

	logger.Info("New WebSocket client connected for CPU usage",
		logger.String("client_ip", c.ClientIP()))

	handler.ServeHTTP(c.Writer, c.Request, m.GetSnapshot())
}
