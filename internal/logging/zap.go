// Package logging constructs the zap logger used by the CLI and the HTTP
// server and adapts it to the simulation engine's logger seam.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production zap logger at the given level. An empty level
// means info.
func New(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// EngineLogger adapts a zap logger to the simulation.Logger interface.
type EngineLogger struct {
	sugar *zap.SugaredLogger
}

// NewEngineLogger wraps a zap logger for use by the simulation engine. A nil
// logger yields a no-op adapter.
func NewEngineLogger(logger *zap.Logger) EngineLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return EngineLogger{sugar: logger.Sugar()}
}

func (l EngineLogger) Debugf(format string, args ...any) { l.sugar.Debugf(format, args...) }
func (l EngineLogger) Infof(format string, args ...any)  { l.sugar.Infof(format, args...) }
func (l EngineLogger) Warnf(format string, args ...any)  { l.sugar.Warnf(format, args...) }
func (l EngineLogger) Errorf(format string, args ...any) { l.sugar.Errorf(format, args...) }
