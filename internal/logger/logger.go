// Package logger configures the zerolog loggers used by the CLI and client.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// ParseLogLevel converts a string log level to a zerolog level, defaulting
// to info for unknown values.
func ParseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// InitLogger creates the process logger. Console output in dev, JSON
// everywhere else.
func InitLogger(level zerolog.Level, environment string) *zerolog.Logger {
	var logger zerolog.Logger

	if environment == "dev" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().
			Timestamp().
			Logger()
	} else {
		logger = zerolog.New(os.Stderr).
			Level(level).
			With().
			Timestamp().
			Logger()
	}

	return &logger
}
