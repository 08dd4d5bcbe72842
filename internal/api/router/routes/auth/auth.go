package auth

import (
	"PowerManager/internal/pkg/config"
	"PowerManager/internal/pkg/jwt"
	"PowerManager/internal/pkg/logger"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultTokenExpiration = 24 * time.Hour

type credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRoutes registers the login endpoint issuing feed tokens
func RegisterRoutes(engine *gin.Engine, cfg *config.Config) {
	authGroup := engine.Group("/api/auth")
	{
		authGroup.POST("/login", login(cfg))
	}
}

func login(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var creds credentials
		if err := c.ShouldBindJSON(&creds); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}

		if !matches(creds.Username, cfg.Agent.Auth.User) || !matches(creds.Password, cfg.Agent.Auth.Pass) {
			logger.Warn("Failed authentication attempt",
				logger.String("username", creds.Username),
				logger.String("ip", c.ClientIP()))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		expiration := defaultTokenExpiration
		if cfg.API.Auth.JWTExpiration > 0 {
			expiration = time.Duration(cfg.API.Auth.JWTExpiration) * time.Second
		}

		token, err := jwt.GenerateToken(creds.Username, cfg.AppName, cfg.API.Auth.JWTSecret, expiration)
		if err != nil {
			logger.Error("Failed to generate token", logger.Err(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     "success",
			"token":      token,
			"expires_in": expiration.Seconds(),
		})
	}
}

func matches(given, expected string) bool {
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(expected)) == 1
}
