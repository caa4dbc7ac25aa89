package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a sugared zap logger configured for CLI output.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger builds a console logger. With verbose enabled, debug level
// output and caller information are included.
func NewLogger(verbose bool) *Logger {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true

	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		config.DisableCaller = true
	}

	logger, err := config.Build()
	if err != nil {
		logger = zap.NewNop()
	}

	return &Logger{logger.Sugar()}
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.SugaredLogger.Sync()
}
