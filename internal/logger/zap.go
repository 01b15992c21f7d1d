package logger

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

// Unknown level strings log everything.
const defaultZapLevel = zapcore.DebugLevel

// appName is attached to every line as the logger name.
const appName = "parceltrack"

func toZapLevel(levelStr string) zapcore.Level {
	switch levelStr {
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return defaultZapLevel
	}
}

func utcTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(time.RFC3339))
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = utcTimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeName = zapcore.FullNameEncoder
	return cfg
}

// newSplitCore writes errors to errOut and everything else at or above level to out.
func newSplitCore(level zapcore.Level, out, errOut zapcore.WriteSyncer) zapcore.Core {
	encoder := zapcore.NewConsoleEncoder(encoderConfig())
	low := zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l >= level && l < zapcore.ErrorLevel })
	high := zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l >= level && l >= zapcore.ErrorLevel })
	return zapcore.NewTee(
		zapcore.NewCore(encoder, out, low),
		zapcore.NewCore(encoder, errOut, high),
	)
}

func newLogger(core zapcore.Core) *Logger {
	return &Logger{SugaredLogger: zap.New(core).Named(appName).Sugar()}
}

// newZapLogger logs to stdout, with errors on stderr.
func newZapLogger(levelStr string) *Logger {
	core := newSplitCore(toZapLevel(levelStr), zapcore.Lock(os.Stdout), zapcore.Lock(os.Stderr))
	return newLogger(core)
}
