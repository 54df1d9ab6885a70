package log

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Level represents logging severity.
type Level int

const (
	// LevelDebug for detailed tracing of selection and expansion.
	LevelDebug Level = iota
	// LevelInfo for general informational messages.
	LevelInfo
	// LevelWarn for recoverable failures (skipped actions, model errors).
	LevelWarn
	// LevelError for errors.
	LevelError
	// LevelNone disables all logging.
	LevelNone
)

// String returns the string representation of a Level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", l)
	}
}

// Logger is the printf-style logging interface used by all packages.
type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}

// StdLogger implements Logger on top of the standard library.
type StdLogger struct {
	logger *log.Logger
	level  Level
}

// NewStdLogger creates a stderr logger with the given minimum level.
func NewStdLogger(level Level) *StdLogger {
	return &StdLogger{
		logger: log.New(os.Stderr, "[cge] ", log.LstdFlags),
		level:  level,
	}
}

// NewCustomLogger creates a logger writing to out.
func NewCustomLogger(out io.Writer, level Level) *StdLogger {
	return &StdLogger{
		logger: log.New(out, "[cge] ", log.LstdFlags),
		level:  level,
	}
}

// Debug logs debug messages.
func (l *StdLogger) Debug(format string, v ...any) {
	if l.level <= LevelDebug {
		l.logger.Printf("[DEBUG] "+format, v...)
	}
}

// Info logs informational messages.
func (l *StdLogger) Info(format string, v ...any) {
	if l.level <= LevelInfo {
		l.logger.Printf("[INFO] "+format, v...)
	}
}

// Warn logs warning messages.
func (l *StdLogger) Warn(format string, v ...any) {
	if l.level <= LevelWarn {
		l.logger.Printf("[WARN] "+format, v...)
	}
}

// Error logs error messages.
func (l *StdLogger) Error(format string, v ...any) {
	if l.level <= LevelError {
		l.logger.Printf("[ERROR] "+format, v...)
	}
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

// Debug does nothing.
func (NoOpLogger) Debug(format string, v ...any) {}

// Info does nothing.
func (NoOpLogger) Info(format string, v ...any) {}

// Warn does nothing.
func (NoOpLogger) Warn(format string, v ...any) {}

// Error does nothing.
func (NoOpLogger) Error(format string, v ...any) {}

// Package-level logger, info level by default.
var defaultLogger Logger = NewStdLogger(LevelInfo)

// SetDefaultLogger replaces the package-level logger.
func SetDefaultLogger(logger Logger) {
	defaultLogger = logger
}

// GetDefaultLogger returns the current package-level logger.
func GetDefaultLogger() Logger {
	return defaultLogger
}

// SetLevel installs a fresh StdLogger at the given level.
func SetLevel(level Level) {
	defaultLogger = NewStdLogger(level)
}

// Debug logs through the package-level logger.
func Debug(format string, v ...any) {
	defaultLogger.Debug(format, v...)
}

// Info logs through the package-level logger.
func Info(format string, v ...any) {
	defaultLogger.Info(format, v...)
}

// Warn logs through the package-level logger.
func Warn(format string, v ...any) {
	defaultLogger.Warn(format, v...)
}

// Error logs through the package-level logger.
func Error(format string, v ...any) {
	defaultLogger.Error(format, v...)
}
