package middleware

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"io"
	"net/http"
	"rapper-ai/application/ports/outbound"
)

func Recovery(logger outbound.LoggerPort) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered interface{}) {
		logger.ErrorWithFields(fmt.Errorf("%v", recovered), "Panic while handling request", map[string]interface{}{
			"request_id": c.GetString(ContextRequestIDKey),
			"path":       c.Request.URL.Path,
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
}
