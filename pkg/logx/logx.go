package logx

import (
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
)

// Level controls the minimum severity that is emitted.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	level  atomic.Int32
	logger atomic.Pointer[slog.Logger]
)

func init() {
	level.Store(int32(LevelInfo))
	logger.Store(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
}

// SetLevel sets the global minimum log level.
func SetLevel(l Level) {
	level.Store(int32(l))
}

func enabled(l Level) bool {
	return int32(l) >= level.Load()
}

func Debug(msg string) {
	if enabled(LevelDebug) {
		logger.Load().Debug(msg)
	}
}

func Debugf(format string, args ...any) {
	if enabled(LevelDebug) {
		logger.Load().Debug(fmt.Sprintf(format, args...))
	}
}

func Info(msg string) {
	if enabled(LevelInfo) {
		logger.Load().Info(msg)
	}
}

func Infof(format string, args ...any) {
	if enabled(LevelInfo) {
		logger.Load().Info(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if enabled(LevelWarn) {
		logger.Load().Warn(msg)
	}
}

func Warnf(format string, args ...any) {
	if enabled(LevelWarn) {
		logger.Load().Warn(fmt.Sprintf(format, args...))
	}
}

func Error(msg string) {
	if enabled(LevelError) {
		logger.Load().Error(msg)
	}
}

func Errorf(format string, args ...any) {
	if enabled(LevelError) {
		logger.Load().Error(fmt.Sprintf(format, args...))
	}
}

// Fatal logs at error level and exits the process.
func Fatal(msg string) {
	logger.Load().Error(msg)
	os.Exit(1)
}

func Fatalf(format string, args ...any) {
	logger.Load().Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
