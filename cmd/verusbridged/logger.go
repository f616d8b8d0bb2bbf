package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/veruslabs/verusrpc/middleware"
)

// zapLogger adapts *zap.Logger to the middleware logging interface.
type zapLogger struct {
	lg *zap.Logger
}

// NewLogger builds a production zap logger at the given level.
func NewLogger(level string) (*zapLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	lg, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &zapLogger{lg: lg}, nil
}

func (z *zapLogger) Debug(msg string, fields ...middleware.Field) {
	z.lg.Debug(msg, zapFields(fields)...)
}

func (z *zapLogger) Info(msg string, fields ...middleware.Field) {
	z.lg.Info(msg, zapFields(fields)...)
}

func (z *zapLogger) Warn(msg string, fields ...middleware.Field) {
	z.lg.Warn(msg, zapFields(fields)...)
}

func (z *zapLogger) Error(msg string, fields ...middleware.Field) {
	z.lg.Error(msg, zapFields(fields)...)
}

// Sync flushes buffered log entries.
func (z *zapLogger) Sync() error {
	return z.lg.Sync()
}

func zapFields(fields []middleware.Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = zap.Any(f.Key, f.Value)
	}
	return out
}
