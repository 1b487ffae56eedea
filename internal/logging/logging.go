// Package logging configures zerolog for the bento command.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options controls logger setup.
type Options struct {
	Out       io.Writer // defaults to os.Stderr
	Verbosity int       // count of -v flags
	Quiet     bool      // errors only, wins over Verbosity
	Level     string    // config level name, used when Verbosity is 0
	NoColor   bool
}

// LevelFor maps CLI verbosity to a level: warn by default, then info,
// debug and trace for each additional -v.
func LevelFor(verbosity int, quiet bool) zerolog.Level {
	if quiet {
		return zerolog.ErrorLevel
	}
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Setup configures the global logger and level, and returns the logger.
func Setup(opts Options) (zerolog.Logger, error) {
	level := LevelFor(opts.Verbosity, opts.Quiet)
	if opts.Verbosity == 0 && !opts.Quiet && opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("log level %q: %w", opts.Level, err)
		}
		level = parsed
	}
	zerolog.SetGlobalLevel(level)

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	console := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}

	logger := zerolog.New(console).With().Timestamp().Logger()
	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	log.Logger = logger

	logger.Debug().Str("level", level.String()).Msg("logger initialized")
	return logger, nil
}

// Component returns the global logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// Duration returns a function that logs the elapsed time of operation at debug level.
func Duration(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("operation completed")
	}
}
