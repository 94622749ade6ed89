package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID injects an X-Request-ID header into the request and response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// minLoggedStatus returns the lowest response status written to the access log for level.
func minLoggedStatus(level string) int {
	switch strings.ToLower(level) {
	case "warn", "warning":
		return 400
	case "error":
		return 500
	default:
		return 0
	}
}

// Logger logs each HTTP request with method, path, status, and latency. With level "warn"
// only 4xx and 5xx responses are logged, with "error" only 5xx.
func Logger(level string) gin.HandlerFunc {
	threshold := minLoggedStatus(level)
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		if status < threshold {
			return
		}
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] %s %s %d %s",
			requestID,
			c.Request.Method,
			c.Request.URL.Path,
			status,
			latency,
		)
	}
}

// Recovery recovers from panics and returns a 500 error.
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
