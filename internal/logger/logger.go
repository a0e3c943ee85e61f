// Package logger owns the process-wide zap logger.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global logger. It discards everything until Init runs.
var Log = zap.NewNop()

// Rotation limits for the log file
const (
	maxFileSizeMB  = 10
	maxFileBackups = 3
	maxFileAgeDays = 14
)

// Options selects where log entries go.
type Options struct {
	Level string
	// File, when set, receives JSON entries and is rotated by size.
	File string
	// Console writes human-readable entries to stderr, keeping stdout free
	// for command output.
	Console bool
}

// Init replaces the global logger. An empty level means info.
func Init(level, logFile string) error {
	l, err := New(Options{Level: level, File: logFile, Console: true})
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// New builds a logger without touching the global one.
func New(opts Options) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if opts.Level != "" {
		var err error
		if lvl, err = zapcore.ParseLevel(opts.Level); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
	}

	var cores []zapcore.Core
	if opts.Console {
		enc := zap.NewDevelopmentEncoderConfig()
		enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc.CallerKey = ""
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stderr), lvl))
	}
	if opts.File != "" {
		w := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxFileSizeMB,
			MaxBackups: maxFileBackups,
			MaxAge:     maxFileAgeDays,
			Compress:   true,
			LocalTime:  true,
		}
		enc := zap.NewProductionEncoderConfig()
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), lvl))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// Sync flushes buffered entries.
func Sync() {
	_ = Log.Sync()
}

// Named returns a child of the global logger for one component.
func Named(name string) *zap.Logger {
	return Log.Named(name)
}

// Debug, Info and Warn log through the global logger.
func Debug(msg string, fields ...zap.Field) { Log.Debug(msg, fields...) }

func Info(msg string, fields ...zap.Field) { Log.Info(msg, fields...) }

func Warn(msg string, fields ...zap.Field) { Log.Warn(msg, fields...) }
