package logger

import (
	"io"
	"log"
	"strings"
)

// Level represents different logging verbosity levels
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// Logger provides leveled logging
type Logger struct {
	level Level
	out   *log.Logger
}

// New creates a logger writing to w at the given level.
func New(w io.Writer, level Level) *Logger {
	return &Logger{level: level, out: log.New(w, "", log.LstdFlags)}
}

// ParseLevel maps a level name to a Level. Unknown names fall back to INFO.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LevelError
	case "WARN", "WARNING":
		return LevelWarn
	case "DEBUG":
		return LevelDebug
	case "TRACE":
		return LevelTrace
	default:
		return LevelInfo
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, LevelError)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LevelError, "[ERROR] ", format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LevelWarn, "[WARN] ", format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LevelInfo, "[INFO] ", format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LevelDebug, "[DEBUG] ", format, args...)
}

func (l *Logger) Trace(format string, args ...interface{}) {
	l.logf(LevelTrace, "[TRACE] ", format, args...)
}

func (l *Logger) logf(level Level, prefix, format string, args ...interface{}) {
	if l == nil || l.level < level {
		return
	}
	l.out.Printf(prefix+format, args...)
}

// SetLevel changes the verbosity.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	return l.level
}
