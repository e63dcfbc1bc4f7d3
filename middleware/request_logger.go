package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"rapper-ai/application/ports/outbound"
	"time"
)

const (
	RequestIDHeader     = "X-Request-ID"
	ContextRequestIDKey = "requestID"
)

// RequestLogger tags every request with an id, echoed in the response
// headers, and logs one entry per request once it has been handled.
func RequestLogger(logger outbound.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		fields := map[string]interface{}{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			logger.ErrorWithFields(c.Errors.Last(), "Request failed", fields)
			return
		}
		logger.InfoWithFields("Handled request", fields)
	}
}
