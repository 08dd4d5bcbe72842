package handlers

import (
	"PowerManager/internal/monitoring/cpu"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// CPUHandler serves the CPU usage feed endpoints
type CPUHandler struct {
	monitor  *cpu.Monitor
	hostInfo func() (*cpu.HostInfo, error)

	once sync.Once
	host *cpu.HostInfo
	err  error
}

// NewCPUHandler creates a handler reading from the given monitor
func NewCPUHandler(monitor *cpu.Monitor) *CPUHandler {
	return &CPUHandler{
		monitor:  monitor,
		hostInfo: cpu.GetHostInfo,
	}
}

// GetUsage returns the last sample with its aggregate and display lines
func (h *CPUHandler) GetUsage(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitor.GetSnapshot())
}

// GetLines returns only the display strings of the last sample
func (h *CPUHandler) GetLines(c *gin.Context) {
	lines := cpu.Format(h.monitor.GetLastSample())
	c.JSON(http.StatusOK, gin.H{
		"aggregate": lines.Aggregate,
		"cores":     lines.Cores,
	})
}

// GetInfo returns processor details; they are read once and cached
func (h *CPUHandler) GetInfo(c *gin.Context) {
	h.once.Do(func() {
		h.host, h.err = h.hostInfo()
	})
	if h.err != nil {
		HandleError(c, http.StatusInternalServerError, h.err)
		return
	}
	c.JSON(http.StatusOK, h.host)
}
