package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aztfmod/cafmerge/pkg/constants"
)

// Config describes how a logger is built.
type Config struct {
	// Level is the minimum level written: trace, debug, info, warn, error.
	Level string

	// Format is json, console or auto. Auto picks console for a terminal
	// stderr and json for everything else.
	Format string

	// Output is stderr, stdout, discard, or a file path to append to.
	Output string

	// TimeFormat sets the console timestamp layout: kitchen, rfc3339,
	// rfc3339nano, stamp, unix, or a Go layout string.
	TimeFormat string

	NoColor   bool
	AddCaller bool
}

// DefaultConfig returns the configuration used before any flags or config
// files are read.
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Format:     "auto",
		Output:     "stderr",
		TimeFormat: "kitchen",
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
}

// NewLoggerFromConfig builds a logger from cfg. A nil cfg means DefaultConfig.
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level := parseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(formatWriter(cfg, openOutput(cfg.Output))).
		Level(level).
		With().
		Timestamp().
		Logger()

	if cfg.AddCaller || level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

// Configure replaces the default logger with one built from cfg.
func Configure(cfg *Config) {
	SetDefault(NewLoggerFromConfig(cfg))
}

// openOutput resolves an output name. An unwritable file path falls back
// to stderr.
func openOutput(name string) io.Writer {
	switch strings.ToLower(name) {
	case "", "stderr":
		return os.Stderr
	case "stdout":
		return os.Stdout
	case "discard", "none":
		return io.Discard
	}

	file, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return os.Stderr
	}
	return file
}

func formatWriter(cfg *Config, out io.Writer) io.Writer {
	format := strings.ToLower(cfg.Format)
	if format == "" || format == "auto" {
		format = "json"
		if f, ok := out.(*os.File); ok && f == os.Stderr && isTerminal(f) {
			format = "console"
		}
	}

	if format != "console" && format != "pretty" {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: parseTimeFormat(cfg.TimeFormat),
		NoColor:    cfg.NoColor,
	}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "warning":
		return zerolog.WarnLevel
	case "none", "off":
		return zerolog.Disabled
	case "":
		return zerolog.InfoLevel
	}
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.InfoLevel
	}
	return l
}

// parseTimeFormat maps a time format name to a layout. Unknown names that
// are not layouts fall back to kitchen.
func parseTimeFormat(format string) string {
	switch strings.ToLower(format) {
	case "", "kitchen":
		return time.Kitchen
	case "rfc3339":
		return time.RFC3339
	case "rfc3339nano":
		return time.RFC3339Nano
	case "stamp":
		return time.Stamp
	case "unix", "epoch":
		return zerolog.TimeFormatUnix
	}
	if strings.Contains(format, "2006") || strings.Contains(format, "15:04") {
		return format
	}
	return time.Kitchen
}
