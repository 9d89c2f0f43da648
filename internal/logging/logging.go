// Package logging wires zerolog for console diagnostics. Log output is
// never part of the user-facing rendering; it goes to stderr only.
package logging

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger. Unknown level names fall back to warn.
func Setup(level string, noColor bool) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: noColor}
	log.Logger = zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}
