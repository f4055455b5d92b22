package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New instantiates a production-ready zap logger with JSON structured logging.
// LOG_LEVEL (debug|info|warn|error) overrides the default info level.
func New() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		parsed, err := zapcore.ParseLevel(lvl)
		if err == nil {
			cfg.Level = zap.NewAtomicLevelAt(parsed)
		}
	}

	return cfg.Build()
}

// Must is a helper that panics when the logger cannot be created.
func Must(logger *zap.Logger, err error) *zap.Logger {
	if err != nil {
		panic(err)
	}
	return logger
}
