package log

import (
	"log/slog"
	"strings"

	"github.com/iotaledger/rbviz/ierrors"
)

// Level is the type of log levels.
type Level = slog.Level

const (
	// LevelTrace is the log level for trace messages.
	LevelTrace = slog.Level(-8)

	// LevelDebug is the log level for debug messages.
	LevelDebug = slog.LevelDebug

	// LevelInfo is the log level for info messages.
	LevelInfo = slog.LevelInfo

	// LevelWarning is the log level for warning messages.
	LevelWarning = slog.LevelWarn

	// LevelError is the log level for error messages.
	LevelError = slog.LevelError

	// LevelFatal is the log level for fatal messages.
	LevelFatal = slog.Level(12)

	// LevelPanic is the log level for panic messages.
	LevelPanic = slog.Level(16)
)

// LevelName returns the name of the given log level.
func LevelName(level Level) string {
	switch level {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	case LevelPanic:
		return "PANIC"
	default:
		return "UNKNOWN"
	}
}

// LevelFromString returns the log level for the given string.
func LevelFromString(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	case "panic":
		return LevelPanic, nil
	default:
		return 0, ierrors.Errorf("unknown log level: %s", level)
	}
}
