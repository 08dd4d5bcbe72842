package websocket

import (
	"PowerManager/internal/pkg/logger"
	"encoding/json"
)

// BroadcastCPU sends CPU metrics to all connected clients
func (r *Registry) BroadcastCPU(metrics interface{}) {
	handler := r.GetCPUHandler()
	if handler == nil {
		return
	}

	data, err := json.Marshal(metrics)
	if err != nil {
		logger.Error("Failed to marshal CPU metrics for WebSocket broadcast", logger.Err(err))
		return
	}
	handler.Broadcast(data)
}
