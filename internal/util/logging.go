package util

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogging configures the global zerolog logger. Levels: "debug", "info",
// "warn", "error"; anything else falls back to info. When console is true the
// output is human-readable instead of JSON.
func SetupLogging(level string, console bool) {
	var zlevel zerolog.Level
	switch strings.ToLower(level) {
	case "debug":
		zlevel = zerolog.DebugLevel
	case "info":
		zlevel = zerolog.InfoLevel
	case "warn":
		zlevel = zerolog.WarnLevel
	case "error":
		zlevel = zerolog.ErrorLevel
	default:
		zlevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(zlevel)

	if console {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
