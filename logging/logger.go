// Package logging provides the leveled logger shared by the CLI and the
// HTTP server.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level represents the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelOff
)

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
	case LevelOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a string into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO", "":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	case "OFF", "NONE":
		return LevelOff, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
}

// Logger is the minimal leveled logging interface.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	SetLevel(level Level)
}

// StdLogger writes leveled messages through the standard library logger.
type StdLogger struct {
	mu     sync.RWMutex
	level  Level
	logger *log.Logger
}

// New creates a logger writing to output at the given minimum level.
func New(output io.Writer, level Level) *StdLogger {
	return &StdLogger{
		level:  level,
		logger: log.New(output, "", log.LstdFlags),
	}
}

// SetLevel sets the minimum log level.
func (l *StdLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *StdLogger) log(level Level, format string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if level < l.level {
		return
	}
	l.logger.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

func (l *StdLogger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *StdLogger) Info(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *StdLogger) Warn(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *StdLogger) Error(format string, args ...any) { l.log(LevelError, format, args...) }

var global = New(os.Stderr, LevelInfo)

// SetLevel sets the global log level.
func SetLevel(level Level) { global.SetLevel(level) }

// Default returns the global logger.
func Default() Logger { return global }

// Debug logs a debug message using the global logger.
func Debug(format string, args ...any) { global.Debug(format, args...) }

// Info logs an info message using the global logger.
func Info(format string, args ...any) { global.Info(format, args...) }

// Warn logs a warning message using the global logger.
func Warn(format string, args ...any) { global.Warn(format, args...) }

// Error logs an error message using the global logger.
func Error(format string, args ...any) { global.Error(format, args...) }
