// Package log provides structured logging to the Nexus log file.
//
// The TUI owns the terminal, so nothing is written to stdout once the
// logger is initialised; Go's standard log package is redirected to the
// same file.
package log

import (
	"fmt"
	stdlog "log"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileName is the name of the log file inside the log directory.
const FileName = "nexus.log"

// Logger writes JSON lines to a log file.
type Logger struct {
	file    *os.File
	base    *zap.Logger
	sugared *zap.SugaredLogger
}

// New creates a logger that appends to <logDir>/nexus.log.
// Debug lowers the level from info to debug.
func New(logDir string, debug bool) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, FileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(file),
		zap.NewAtomicLevelAt(level),
	)
	base := zap.New(core, zap.AddStacktrace(zapcore.FatalLevel))

	return &Logger{
		file:    file,
		base:    base,
		sugared: base.Sugar(),
	}, nil
}

// Zap returns the underlying structured logger.
func (l *Logger) Zap() *zap.Logger {
	return l.base
}

// Printf writes a formatted info message.
func (l *Logger) Printf(format string, args ...interface{}) {
	l.sugared.Infof(format, args...)
}

// Errorf writes a formatted error message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.sugared.Errorf(format, args...)
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	_ = l.base.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Global logger instance
var globalLogger *Logger

// Init initializes the global logger and redirects Go's standard log
// package to the log file so stray log.Printf calls don't corrupt the TUI.
func Init(logDir string, debug bool) error {
	logger, err := New(logDir, debug)
	if err != nil {
		return err
	}
	globalLogger = logger

	stdlog.SetOutput(logger.file)
	stdlog.SetFlags(stdlog.Ldate | stdlog.Ltime)

	return nil
}

// L returns the global structured logger, or a no-op logger before Init.
func L() *zap.Logger {
	if globalLogger != nil {
		return globalLogger.base
	}
	return zap.NewNop()
}

// Printf uses the global logger to print formatted output.
func Printf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Printf(format, args...)
	} else {
		fmt.Printf(format, args...)
	}
}

// Errorf uses the global logger to print formatted error output.
func Errorf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Errorf(format, args...)
	} else {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// Close closes the global logger.
func Close() error {
	if globalLogger != nil {
		err := globalLogger.Close()
		globalLogger = nil
		return err
	}
	return nil
}
