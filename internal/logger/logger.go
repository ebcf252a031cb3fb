package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is a no-op until Init is called so that
// packages and tests can log unconditionally.
var Log = zap.NewNop()

func Init() {
	InitWithLevel(zapcore.InfoLevel)
}

// InitWithLevel replaces Log with a console logger at the given level.
func InitWithLevel(level zapcore.Level) {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	l, err := config.Build()
	if err != nil {
		// Keep the previous logger, nothing else can report this.
		return
	}
	Log = l
}

// Sync flushes buffered entries. Errors from syncing stderr are ignored.
func Sync() {
	_ = Log.Sync()
}
