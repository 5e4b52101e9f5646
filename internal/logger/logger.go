// Package logger builds the zap logger and the request logging middleware.
package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewZapLog creates a production zap logger at the given level.
func NewZapLog(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zapcfg := zap.NewProductionConfig()
	zapcfg.Level = lvl
	return zapcfg.Build()
}

// RequestLogger logs every request once the handler chain has finished.
func RequestLogger(zaplog *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.String("path", path),
			zap.String("method", c.Request.Method),
			zap.Int("code", c.Writer.Status()),
			zap.Int("length", c.Writer.Size()),
			zap.Duration("duration", time.Since(start)),
		}
		if errs := c.Errors.ByType(gin.ErrorTypePrivate); len(errs) > 0 {
			fields = append(fields, zap.String("error", errs.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			zaplog.Error("served HTTP request", fields...)
		default:
			zaplog.Info("served HTTP request", fields...)
		}
	}
}
