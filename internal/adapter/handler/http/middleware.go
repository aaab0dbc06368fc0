package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// requestLogger logs every request once it is served.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path

		ctx.Next()

		fields := []zap.Field{
			zap.String("method", ctx.Request.Method),
			zap.String("path", path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Int("size", ctx.Writer.Size()),
			zap.Duration("duration", time.Since(start)),
		}
		if len(ctx.Errors) > 0 {
			logger.Warn("request served", append(fields, zap.String("errors", ctx.Errors.String()))...)
			return
		}
		logger.Debug("request served", fields...)
	}
}
