package main

import (
	"log/slog"
	"net/http"
	"time"

	"fintrack/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtAuthMiddleware verifies the bearer token and resolves the referenced user
// before any protected handler runs. A token for a user that no longer exists
// is rejected the same way as an invalid one.
func jwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized, no token"})
			c.Abort()
			return
		}
		tokenString := authHeader[7:]
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrInvalidKeyType
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized, token failed"})
			c.Abort()
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized, token failed"})
			c.Abort()
			return
		}
		id, ok := claims["id"].(float64)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized, token failed"})
			c.Abort()
			return
		}
		var user models.User
		if err := db.First(&user, uint(id)).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authorized, token failed"})
			c.Abort()
			return
		}
		c.Set("user", &user)
		c.Next()
	}
}

// currentUser returns the identity resolved by jwtAuthMiddleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, _ := c.Get("user")
	user, ok := v.(*models.User)
	return user, ok
}

// requestLogger tags every request with an id and emits one structured log
// line on completion.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set("request_id", reqID)
		c.Header("X-Request-ID", reqID)
		start := time.Now()
		c.Next()
		slog.Info("request completed",
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
