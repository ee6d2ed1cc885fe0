package handler

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		attrs := []any{
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", ctx.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", ctx.ClientIP(),
		}
		if len(ctx.Errors) > 0 {
			logger.Warn("request completed with errors", append(attrs, "errors", ctx.Errors.String())...)
			return
		}
		logger.Debug("request", attrs...)
	}
}
