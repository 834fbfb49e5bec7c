// Package logging builds the structured loggers used by the renderer's tools.
//
// A Logger writes to the console and, optionally, to a rotating JSON log file:
//
//	logger, err := logging.NewLogger(true, "mandelbrot.log")
//	if err != nil {
//	    return err
//	}
//	defer logger.Sync()
//
//	logger.Info("rendering", zap.Stringer("bounds", bounds))
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap.Logger.
type Logger struct {
	zap *zap.Logger
}

// NewLogger creates a Logger writing to stderr and, if logFilePath is not
// empty, to a rotating JSON file at logFilePath.
//
// In development mode the console gets colored human-readable output at debug
// level; otherwise both outputs are JSON at info level.
func NewLogger(isDevelopment bool, logFilePath string) (*Logger, error) {
	var file zapcore.WriteSyncer
	if logFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		file = NewFileWriter(logFilePath, FileWriterConfig{})
	}

	return NewLoggerWithWriters(isDevelopment, zapcore.Lock(zapcore.AddSync(os.Stderr)), file), nil
}

// NewLoggerWithWriters creates a Logger writing to console and, if file is not
// nil, to file.
func NewLoggerWithWriters(isDevelopment bool, console, file zapcore.WriteSyncer) *Logger {
	level := zapcore.InfoLevel
	consoleEncoder := zapcore.NewJSONEncoder(NewEncoderConfig())
	if isDevelopment {
		level = zapcore.DebugLevel
		consoleEncoder = zapcore.NewConsoleEncoder(NewConsoleEncoderConfig())
	}

	core := zapcore.NewCore(consoleEncoder, console, level)
	if file != nil {
		// Files are always JSON.
		core = zapcore.NewTee(core, zapcore.NewCore(zapcore.NewJSONEncoder(NewEncoderConfig()), file, level))
	}

	return &Logger{zap: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return &Logger{zap: zap.NewNop()}
}

// Zap is the underlying logger, for packages that take a *zap.Logger.
// Unlike the Logger's own methods it does not skip a caller frame.
func (l *Logger) Zap() *zap.Logger {
	return l.zap.WithOptions(zap.AddCallerSkip(-1))
}

// Sync flushes buffered entries. Call it before exiting.
func (l *Logger) Sync() error {
	if l == nil || l.zap == nil {
		return nil
	}
	return l.zap.Sync()
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.zap.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.zap.Info(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.zap.Error(msg, fields...)
}

// With returns a child Logger that adds fields to every entry.
func (l *Logger) With(fields ...zap.Field) *Logger {
	child := *l
	child.zap = l.zap.With(fields...)
	return &child
}

// Named returns a child Logger with name appended to the logger name.
func (l *Logger) Named(name string) *Logger {
	child := *l
	child.zap = l.zap.Named(name)
	return &child
}
