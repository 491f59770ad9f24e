package logger

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type contextKey string

const (
	loggerKey contextKey = "logger"

	// GinKey key logger request-scoped di gin.Context
	GinKey = "logger"
)

// FromContext mengambil logger dari context, fallback ke logger global
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return Get()
}

// WithContext menyimpan logger ke context
func WithContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromGin mengambil logger request dari gin.Context
func FromGin(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(GinKey); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return Get()
}
