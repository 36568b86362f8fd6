package logger

import (
	"github.com/joeydtaylor/ncpbridge/pkg/manifest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ProvideLevel is the shared level; DEBUG_NCP_LOG_LEVEL changes it at
// runtime.
func ProvideLevel(cfg manifest.Config) (zap.AtomicLevel, error) {
	lvl, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return zap.AtomicLevel{}, err
	}
	return zap.NewAtomicLevelAt(lvl), nil
}

func ProvideLogger(cfg manifest.Config, lvl zap.AtomicLevel) *zap.Logger {
	return NewLog(cfg.Log, "system.log", lvl)
}

// ProvideLoggerMiddleware logs at info regardless of the system level so
// access lines survive a quiet DEBUG_NCP_LOG_LEVEL.
func ProvideLoggerMiddleware(cfg manifest.Config) *Middleware {
	return NewMiddleware(NewLog(cfg.Log, "http-access.log", zap.InfoLevel))
}
