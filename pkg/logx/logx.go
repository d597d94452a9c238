package logx

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level mirrors zap levels for callers that don't import zap directly
type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

var (
	atomicLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	sugar       *zap.SugaredLogger
)

func init() {
	cfg := zap.NewProductionConfig()
	cfg.Level = atomicLevel
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}
	sugar = logger.Sugar()
}

// SetLevel adjusts the global log level at runtime
func SetLevel(level Level) {
	atomicLevel.SetLevel(level)
}

// ParseLevel converts a config string to a level, defaulting to info
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func Debug(args ...any)                   { sugar.Debug(args...) }
func Debugf(template string, args ...any) { sugar.Debugf(template, args...) }

func Info(args ...any)                   { sugar.Info(args...) }
func Infof(template string, args ...any) { sugar.Infof(template, args...) }

func Warn(args ...any)                   { sugar.Warn(args...) }
func Warnf(template string, args ...any) { sugar.Warnf(template, args...) }

func Error(args ...any)                   { sugar.Error(args...) }
func Errorf(template string, args ...any) { sugar.Errorf(template, args...) }

// Fatalf logs and exits with status 1
func Fatalf(template string, args ...any) { sugar.Fatalf(template, args...) }

// Sync flushes buffered log entries (call on shutdown)
func Sync() {
	_ = sugar.Sync()
}
