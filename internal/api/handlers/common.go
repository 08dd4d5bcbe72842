package handlers

import (
	"PowerManager/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleError provides a consistent way to handle errors in route handlers
func HandleError(c *gin.Context, status int, err error) {
	logger.Error("API error",
		logger.String("path", c.Request.URL.Path),
		logger.Err(err))
	c.JSON(status, gin.H{
		"error": err.Error(),
	})
}

// NotFound answers unknown routes with a JSON body
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}
