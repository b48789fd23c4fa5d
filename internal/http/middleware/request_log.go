package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/neuroadapt-backend/internal/platform/ctxutil"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

// RequestLogger writes one line per request after the handler chain returns.
// Server errors log at ERROR, client errors at WARN.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		kv := []interface{}{
			"method", c.Request.Method,
			"route", c.FullPath(),
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"client_ip", c.ClientIP(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if td := ctxutil.GetTraceData(ctx); td != nil {
			kv = append(kv, "trace_id", td.TraceID, "request_id", td.RequestID)
		}
		if id := ctxutil.UserID(ctx); id != "" {
			kv = append(kv, "user_id", id)
		}
		if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
			kv = append(kv, "errors", errs.String())
		}
		logAtStatus(log, c.Writer.Status())("HTTP request", kv...)
	}
}

func logAtStatus(log *logger.Logger, status int) func(string, ...interface{}) {
	switch {
	case status >= 500:
		return log.Error
	case status >= 400:
		return log.Warn
	default:
		return log.Info
	}
}
