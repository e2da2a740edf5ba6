package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	RequestIDHeader  = "X-Request-ID"
	ContextLoggerKey = "logger"
)

// RequestLogger tags every request with an ID, stores a request scoped
// logger in the context and logs the outcome once the handler returns.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(reqID); err != nil {
			reqID = uuid.NewString()
		}
		c.Header(RequestIDHeader, reqID)

		reqLog := logger.With(zap.String("request_id", reqID))
		c.Set(ContextLoggerKey, reqLog)

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			reqLog.Error("request failed", fields...)
		case c.Writer.Status() >= 400:
			reqLog.Warn("request rejected", fields...)
		default:
			reqLog.Info("request served", fields...)
		}
	}
}

// Logger returns the request scoped logger, or a no-op logger outside
// RequestLogger.
func Logger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(ContextLoggerKey); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return zap.NewNop()
}
