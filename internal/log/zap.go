// Package log wraps zap for the probe's debug trace.
//
//	log.Setup(os.Stderr, true)
//	log.Debug("dial", zap.String("addr", addr))
//
// Until Setup enables it the logger discards everything, so normal runs
// keep stdout and stderr reserved for the report.
package log

import (
	"io"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log   = zap.NewNop()
	logMu sync.RWMutex
)

// Setup installs a console logger writing to w at debug level, or a no-op
// logger when enabled is false.
func Setup(w io.Writer, enabled bool) {
	logger := zap.NewNop()
	if enabled {
		core := zapcore.NewCore(getEncoder(), zapcore.AddSync(w), zapcore.DebugLevel)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	}

	logMu.Lock()
	log = logger
	logMu.Unlock()
}

func current() *zap.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return log
}

func Debug(msg string, fields ...zap.Field) {
	current().Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	current().Warn(msg, fields...)
}

func Sync() {
	// Sync on a console writer such as stderr reports EINVAL on some
	// platforms; there is nothing left to flush in that case.
	_ = current().Sync()
}

func getEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.LineEnding = zapcore.DefaultLineEnding
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	encoderConfig.EncodeTime = timeEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	encoderConfig.EncodeName = zapcore.FullNameEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05"))
}
