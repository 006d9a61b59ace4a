package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewZapLogger builds a JSON logger writing to stdout.
func NewZapLogger(name string, level zapcore.Level) *zap.SugaredLogger {
	return newLogger(name, level, zapcore.AddSync(os.Stdout))
}

// NewZapFileLogger builds a JSON logger writing to stdout and to a rotated log file.
func NewZapFileLogger(name string, level zapcore.Level, path string) *zap.SugaredLogger {
	rotated := &lumberjack.Logger{
		Filename: path,
		MaxSize:  100,
		MaxAge:   14,
		Compress: true,
	}
	return newLogger(name, level, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout), zapcore.AddSync(rotated)))
}

func newLogger(name string, level zapcore.Level, sink zapcore.WriteSyncer) *zap.SugaredLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), sink, zap.NewAtomicLevelAt(level))

	return zap.New(core, zap.AddCaller()).Named(name).Sugar()
}
