package middleware

import (
	"PowerManager/internal/pkg/jwt"
	"PowerManager/internal/pkg/logger"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware rejects requests without a valid bearer token.
// WebSocket clients may pass the token as the "token" query parameter instead.
func JWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if c.Request.Header.Get("Upgrade") == "websocket" {
			token = c.Query("token")
		}

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
				return
			}
			token = parts[1]
		}

		claims, err := jwt.ValidateToken(token, jwtSecret)
		if err != nil {
			logger.Warn("Invalid JWT token",
				logger.Err(err),
				logger.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}
