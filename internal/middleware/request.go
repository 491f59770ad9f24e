package middleware

import (
	"time"

	"clinic-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const HeaderRequestID = "X-Request-ID"

// RequestID memastikan setiap request punya X-Request-ID dan logger
// request-scoped (di gin.Context dan di context request).
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)

		log := logger.Get().With(zap.String("request_id", id))
		c.Set(logger.GinKey, log)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), log))
		c.Next()
	}
}

// RequestLogger mencatat satu baris per request. Error 5xx ikut dicatat
// bersama penyebabnya dari c.Errors.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}

		log := logger.FromGin(c)
		switch {
		case status >= 500:
			if len(c.Errors) > 0 {
				fields = append(fields, zap.Error(c.Errors.Last().Err))
			}
			log.Error("request failed", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// CORS untuk dashboard admin yang di-host terpisah
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, "+HeaderRequestID)
		c.Header("Access-Control-Expose-Headers", HeaderRequestID)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
