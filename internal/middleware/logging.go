package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hearth/internal/logger"
	"hearth/internal/uuid"
)

const requestIDKey = "requestID"

// RequestID returns the id assigned to the request by RequestLogging, or ""
// when the middleware is not installed.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// RequestLogging returns a Gin middleware that tags each request with a
// UUIDv7 request id (same id family as the ledger records) and logs method,
// path, status, latency, and client IP using Zap. Requests that failed are
// logged at warn level with their collected errors.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := uuid.New()
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		fields := []interface{}{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.Errors())
		}

		log := logger.Get()
		if c.Writer.Status() >= http.StatusInternalServerError || len(c.Errors) > 0 {
			log.Warnw("request", fields...)
			return
		}
		log.Infow("request", fields...)
	}
}
