package pong

import (
	"log/slog"
	"os"
)

// logLevel controls the log level for game logging.
// Default is LevelInfo, which suppresses per-tick Debug messages.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging of bounces and resets.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// Verbose returns true if debug logging is enabled.
func Verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

// Logger returns the package logger. Backends use it so a single
// SetVerbose call controls all output.
func Logger() *slog.Logger {
	return gameLogger
}

// gameLogger is the default logger for Game and the backends.
var gameLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
