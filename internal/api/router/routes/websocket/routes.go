package websocket

import (
	"PowerManager/internal/monitoring/cpu"

	"github.com/gin-gonic/gin"
)

// RegisterWebSocketRoutes registers the websocket routes
func RegisterWebSocketRoutes(group gin.IRoutes, cpuMonitor *cpu.Monitor) {
	group.GET("/ws/cpu", cpuMonitor.WebSocketHandler)
}
