package log

import (
	"log/slog"

	"github.com/iotaledger/rbviz/runtime/options"
)

// Logger is a hierarchical logger that can be used to log messages with different log levels.
type Logger interface {
	// LogName returns the name of the logger instance.
	LogName() string

	// LogPath returns the full path of the logger that is formed by a combination of the names of its ancestors and
	// its own name.
	LogPath() string

	// LogLevel returns the current log level of the logger.
	LogLevel() Level

	// SetLogLevel sets the log level of the logger. Child loggers without an own log level follow the change.
	SetLogLevel(level Level)

	// LogTrace emits a log message with the TRACE level.
	LogTrace(msg string, args ...any)

	// LogTracef emits a formatted log message with the TRACE level.
	LogTracef(fmtString string, args ...any)

	// LogDebug emits a log message with the DEBUG level.
	LogDebug(msg string, args ...any)

	// LogDebugf emits a formatted log message with the DEBUG level.
	LogDebugf(fmtString string, args ...any)

	// LogInfo emits a log message with the INFO level.
	LogInfo(msg string, args ...any)

	// LogInfof emits a formatted log message with the INFO level.
	LogInfof(fmtString string, args ...any)

	// LogWarn emits a log message with the WARN level.
	LogWarn(msg string, args ...any)

	// LogWarnf emits a formatted log message with the WARN level.
	LogWarnf(fmtString string, args ...any)

	// LogError emits a log message with the ERROR level.
	LogError(msg string, args ...any)

	// LogErrorf emits a formatted log message with the ERROR level.
	LogErrorf(fmtString string, args ...any)

	// LogFatal emits a log message with the FATAL level, then calls os.Exit(1).
	LogFatal(msg string, args ...any)

	// LogFatalf emits a formatted log message with the FATAL level, then calls os.Exit(1).
	LogFatalf(fmtString string, args ...any)

	// LogPanic emits a log message with the PANIC level, then panics.
	LogPanic(msg string, args ...any)

	// LogPanicf emits a formatted log message with the PANIC level, then panics.
	LogPanicf(fmtString string, args ...any)

	// Log emits a log message with the given level.
	Log(msg string, level Level, args ...any)

	// Logf emits a formatted log message with the given level.
	Logf(fmtString string, level Level, args ...any)

	// NewChildLogger creates a new child logger with the given name. If enumerateChildren is true, the child logger
	// will extend the name with the number of existing child loggers with the same name.
	NewChildLogger(name string, enumerateChildren ...bool) Logger
}

// NewLogger creates a new logger with the given options.
// If no options are provided, the logger uses the info level and writes to stdout with rfc3339 time format.
func NewLogger(opts ...options.Option[Options]) Logger {
	loggerOptions := newOptions(opts...)

	l := newLogger(slog.New(NewTextHandler(loggerOptions)), nil, loggerOptions.Name)
	l.SetLogLevel(loggerOptions.Level)

	return l
}

// EmptyLogger is a logger that does not log anything.
var EmptyLogger Logger = (*logger)(nil)
