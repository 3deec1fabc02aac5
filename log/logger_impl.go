package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/iotaledger/rbviz/lo"
)

// logger is the default implementation of the Logger interface.
type logger struct {
	// name is the name of the logger instance.
	name string

	// path is the full path of the logger that is formed by a combination of the names of its ancestors and its own
	// name.
	path string

	// rootLogger is the root logger instance.
	rootLogger *slog.Logger

	// parent is the logger this logger inherits its level from (nil for the root).
	parent *logger

	// level is the own log level of the logger (only used if levelSet is true).
	level slog.LevelVar

	// levelSet is true if the logger has its own log level.
	levelSet atomic.Bool

	// childNameCounters holds the instance counters for enumerated child loggers.
	childNameCounters sync.Map
}

// newLogger creates a new logger instance with the given name and parent logger.
func newLogger(rootLogger *slog.Logger, parent *logger, name string) *logger {
	return &logger{
		name:       name,
		path:       lo.Cond(parent == nil || parent.path == "", name, parent.LogPath()+"."+name),
		rootLogger: rootLogger,
		parent:     parent,
	}
}

// LogName returns the name of the logger instance.
func (l *logger) LogName() string {
	if l == nil {
		return "<nil>"
	}

	return l.name
}

// LogPath returns the full path of the logger that is formed by a combination of the names of its ancestors and its own
// name.
func (l *logger) LogPath() string {
	if l == nil {
		return "<nil>"
	}

	return l.path
}

// LogLevel returns the current log level of the logger.
func (l *logger) LogLevel() Level {
	switch {
	case l == nil:
		return LevelInfo
	case l.levelSet.Load() || l.parent == nil:
		return l.level.Level()
	default:
		return l.parent.LogLevel()
	}
}

// SetLogLevel sets the log level of the logger.
func (l *logger) SetLogLevel(level Level) {
	if l != nil {
		l.level.Set(level)
		l.levelSet.Store(true)
	}
}

// LogTrace emits a log message with the TRACE level.
func (l *logger) LogTrace(msg string, args ...any) {
	l.Log(msg, LevelTrace, args...)
}

// LogTracef emits a formatted log message with the TRACE level.
func (l *logger) LogTracef(fmtString string, args ...any) {
	l.Logf(fmtString, LevelTrace, args...)
}

// LogDebug emits a log message with the DEBUG level.
func (l *logger) LogDebug(msg string, args ...any) {
	l.Log(msg, LevelDebug, args...)
}

// LogDebugf emits a formatted log message with the DEBUG level.
func (l *logger) LogDebugf(fmtString string, args ...any) {
	l.Logf(fmtString, LevelDebug, args...)
}

// LogInfo emits a log message with the INFO level.
func (l *logger) LogInfo(msg string, args ...any) {
	l.Log(msg, LevelInfo, args...)
}

// LogInfof emits a formatted log message with the INFO level.
func (l *logger) LogInfof(fmtString string, args ...any) {
	l.Logf(fmtString, LevelInfo, args...)
}

// LogWarn emits a log message with the WARN level.
func (l *logger) LogWarn(msg string, args ...any) {
	l.Log(msg, LevelWarning, args...)
}

// LogWarnf emits a formatted log message with the WARN level.
func (l *logger) LogWarnf(fmtString string, args ...any) {
	l.Logf(fmtString, LevelWarning, args...)
}

// LogError emits a log message with the ERROR level.
func (l *logger) LogError(msg string, args ...any) {
	l.Log(msg, LevelError, args...)
}

// LogErrorf emits a formatted log message with the ERROR level.
func (l *logger) LogErrorf(fmtString string, args ...any) {
	l.Logf(fmtString, LevelError, args...)
}

// LogFatal emits a log message with the FATAL level, then calls os.Exit(1).
func (l *logger) LogFatal(msg string, args ...any) {
	l.Log(msg, LevelFatal, args...)
	os.Exit(1)
}

// LogFatalf emits a formatted log message with the FATAL level, then calls os.Exit(1).
func (l *logger) LogFatalf(fmtString string, args ...any) {
	l.Logf(fmtString, LevelFatal, args...)
	os.Exit(1)
}

// LogPanic emits a log message with the PANIC level, then panics.
func (l *logger) LogPanic(msg string, args ...any) {
	l.Log(msg, LevelPanic, args...)
	panic(msg)
}

// LogPanicf emits a formatted log message with the PANIC level, then panics.
func (l *logger) LogPanicf(fmtString string, args ...any) {
	l.Logf(fmtString, LevelPanic, args...)
	panic(fmt.Sprintf(fmtString, args...))
}

// Log emits a log message with the given level.
func (l *logger) Log(msg string, level Level, args ...any) {
	if l != nil && l.LogLevel() <= level {
		l.rootLogger.Log(context.Background(), level, msg, append([]any{namespaceKey, l.path}, args...)...)
	}
}

// Logf emits a formatted log message with the given level.
func (l *logger) Logf(fmtString string, level Level, args ...any) {
	if l != nil && l.LogLevel() <= level {
		l.rootLogger.LogAttrs(context.Background(), level, fmt.Sprintf(fmtString, args...), slog.String(namespaceKey, l.path))
	}
}

// NewChildLogger creates a new child logger with the given name.
func (l *logger) NewChildLogger(name string, enumerateChildren ...bool) Logger {
	if l == nil {
		return l
	}

	if len(enumerateChildren) > 0 && enumerateChildren[0] {
		name = l.uniqueChildName(name)
	}

	return newLogger(l.rootLogger, l, name)
}

// uniqueChildName returns the name of a child logger extended by its instance counter.
func (l *logger) uniqueChildName(name string) (uniqueName string) {
	childNameCounter := func() int64 {
		instanceCounter, _ := l.childNameCounters.LoadOrStore(name, &atomic.Int64{})

		//nolint:forcetypeassert // only *atomic.Int64 are stored
		return instanceCounter.(*atomic.Int64).Add(1) - 1
	}

	var nameBuilder strings.Builder
	nameBuilder.WriteString(name)
	nameBuilder.WriteString(strconv.FormatInt(childNameCounter(), 10))

	return nameBuilder.String()
}

// namespaceKey is the key of the slog attribute that holds the namespace of the logger.
const namespaceKey = "namespace"
