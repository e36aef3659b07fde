// Package logger wraps zap behind the small context-aware surface the
// provider clients log through. Library users that never call Init get a
// plain stderr logger at warn level.
package logger

import (
	"context"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

type LogConfig struct {
	Path     string
	LogLevel string
	Console  bool
}

var (
	mu  sync.RWMutex
	log *zap.SugaredLogger = defaultLogger()
)

func defaultLogger() *zap.SugaredLogger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zapcore.WarnLevel)
	return zap.New(core).Sugar()
}

// Init replaces the default logger with a rotated-file logger, optionally
// teeing to stderr.
func Init(conf *LogConfig) {
	level := zapcore.InfoLevel
	if err := level.Set(conf.LogLevel); err != nil {
		level = zapcore.InfoLevel
	}

	encConf := zap.NewProductionEncoderConfig()
	encConf.EncodeTime = zapcore.ISO8601TimeEncoder

	fileSink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   conf.Path,
		MaxSize:    100, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	})

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encConf), fileSink, level),
	}
	if conf.Console {
		consoleEnc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		cores = append(cores, zapcore.NewCore(consoleEnc, zapcore.Lock(os.Stderr), level))
	}

	mu.Lock()
	defer mu.Unlock()
	log = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

func Close() {
	mu.RLock()
	defer mu.RUnlock()
	_ = log.Sync()
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Debugf(_ context.Context, format string, args ...any) {
	get().Debugf(format, args...)
}

func Infof(_ context.Context, format string, args ...any) {
	get().Infof(format, args...)
}

func Warnf(_ context.Context, format string, args ...any) {
	get().Warnf(format, args...)
}

func Errorf(_ context.Context, format string, args ...any) {
	get().Errorf(format, args...)
}
