// Package logger builds the service-wide zerolog logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a logger tagged with the service name, filtered at debug
// or info level per the debug flag. The global level is set to match so
// packages using the zerolog/log shortcut follow the same filter.
func New(serviceName string, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	return zerolog.New(os.Stdout).
		Level(level).
		With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}
