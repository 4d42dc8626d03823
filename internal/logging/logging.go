package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a sugared zap logger writing to stderr, leaving stdout for output.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger logs at warn level unless verbose, which logs debug with the
// development console encoder.
func NewLogger(verbose bool) *Logger {
	return &Logger{SugaredLogger: zap.New(newCore(verbose)).Sugar()}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func newCore(verbose bool) zapcore.Core {
	level := zapcore.WarnLevel
	encCfg := zap.NewProductionEncoderConfig()
	if verbose {
		level = zapcore.DebugLevel
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
}
