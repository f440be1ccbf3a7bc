// Package logging provides structured logging for cafmerge using zerolog.
// It writes human-readable console output when stderr is a terminal and
// structured JSON otherwise.
//
// Example usage:
//
//	logging.Info().Str("path", "resourceDefinition.json").Int("count", 42).Msg("Loaded resource definitions")
//
//	ctx := logging.WithLogger(context.Background(), logging.Default())
//	logging.FromContext(logging.WithSource(ctx, "out.json")).Debug().Msg("Writing")
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var defaultLogger zerolog.Logger

func init() {
	// The CLI reconfigures this once flags and config files are read.
	cfg := DefaultConfig()
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Level = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	defaultLogger = NewLoggerFromConfig(cfg)
}

// Default returns the process-wide logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the process-wide logger, including zerolog's global one.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// Debug starts a debug event on the default logger.
func Debug() *zerolog.Event { return defaultLogger.Debug() }

// Info starts an info event on the default logger.
func Info() *zerolog.Event { return defaultLogger.Info() }

// Warn starts a warn event on the default logger.
func Warn() *zerolog.Event { return defaultLogger.Warn() }

// Error starts an error event on the default logger.
func Error() *zerolog.Event { return defaultLogger.Error() }

// Err starts an error event carrying err. A nil err logs at info level.
func Err(err error) *zerolog.Event { return defaultLogger.Err(err) }

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
