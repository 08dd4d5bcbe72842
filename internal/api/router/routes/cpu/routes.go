package cpu

import (
	"PowerManager/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the CPU usage routes
func RegisterRoutes(group *gin.RouterGroup, cpuHandler *handlers.CPUHandler) {
	cpuGroup := group.Group("/cpu")
	{
		cpuGroup.GET("", cpuHandler.GetUsage)
		cpuGroup.GET("/lines", cpuHandler.GetLines)
		cpuGroup.GET("/info", cpuHandler.GetInfo)
	}
}
