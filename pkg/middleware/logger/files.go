package logger

import (
	"os"
	"path/filepath"

	"github.com/joeydtaylor/ncpbridge/pkg/manifest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLog returns a JSON logger writing to the rotated file cfg.Dir/name,
// teed to stdout when cfg.Console is set.
func NewLog(cfg manifest.Log, name string, lvl zapcore.LevelEnabler) *zap.Logger {
	dir := cfg.Dir
	if dir == "" {
		dir = "log"
	}
	_ = os.MkdirAll(dir, 0o755)

	enc := zap.NewProductionEncoderConfig()
	enc.MessageKey = zapcore.OmitKey
	enc.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	file := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(dir, name),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	})

	cores := []zapcore.Core{zapcore.NewCore(zapcore.NewJSONEncoder(enc), file, lvl)}
	if cfg.Console {
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.Lock(os.Stdout), lvl))
	}
	return zap.New(zapcore.NewTee(cores...))
}
