package middleware

import (
	"github.com/gin-gonic/gin"

	"extinsia/internal/shared/constants"
	"extinsia/internal/shared/logger"
)

func Logger(log logger.Interface) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		args := []any{
			"method", param.Method,
			"path", param.Path,
			"status", param.StatusCode,
			"latency", param.Latency,
			"client_ip", param.ClientIP,
		}

		if param.ErrorMessage != "" {
			args = append(args, "error", param.ErrorMessage)
		}

		if param.StatusCode >= 500 {
			log.Errorw("HTTP request completed", args...)
		} else if param.StatusCode >= 400 {
			log.Warnw("HTTP request completed", args...)
		} else {
			log.Debugw("HTTP request completed", args...)
		}

		return ""
	})
}

// RequestID propagates the X-Request-ID header into the context so
// handlers and the logger can correlate entries.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if requestID := c.GetHeader(constants.HeaderXRequestID); requestID != "" {
			c.Set(constants.ContextKeyRequestID, requestID)
			c.Header(constants.HeaderXRequestID, requestID)
		}
		c.Next()
	}
}
