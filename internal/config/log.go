package config

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logging environment variables.
const (
	EnvLogLevel = "ARCADE_LOG_LEVEL"
	EnvLogFile  = "ARCADE_LOG_FILE"
)

// NewLogger creates a logger writing to w with the level taken from
// ARCADE_LOG_LEVEL (info when unset or invalid).
func NewLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(GetEnv(EnvLogLevel, "info"))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *log.Logger {
	return log.New(io.Discard)
}
