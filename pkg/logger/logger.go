package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu  sync.RWMutex
	log = zap.NewNop()
)

// Init membangun logger global. env "production" = JSON, selain itu console berwarna.
func Init(level, env, service string) error {
	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	built, err := cfg.Build(zap.Fields(
		zap.String("service", service),
		zap.String("environment", env),
	))
	if err != nil {
		return err
	}

	Set(built)
	zap.ReplaceGlobals(built)
	return nil
}

// Set mengganti logger global (dipakai test)
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// Get mengembalikan logger global
func Get() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Sync flush buffer sebelum proses keluar
func Sync() {
	_ = Get().Sync()
}
