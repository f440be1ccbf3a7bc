// Package app provides the application context and dependency management
// for the cafmerge CLI. It centralizes configuration, logging and the
// construction of the merge pipeline so commands only see the
// application.Application interface.
package app

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/aztfmod/cafmerge/cmd/application"
	"github.com/aztfmod/cafmerge/pkg/enhancer"
	"github.com/aztfmod/cafmerge/pkg/errors"
	"github.com/aztfmod/cafmerge/pkg/merger"
)

// App represents the cafmerge application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	stdout io.Writer
	stderr io.Writer
}

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment, .env files and the optional
// config file, then customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format for listings.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Merger returns a merger whose enhancer follows the configured
// placeholder namespace and label heuristic. opts are applied last.
func (a *App) Merger(opts ...merger.Option) (*merger.Merger, error) {
	e, err := enhancer.New(
		enhancer.WithUnknownNamespace(a.config.UnknownNamespace),
		enhancer.WithLabelPrefix(a.config.LabelPrefix),
		enhancer.WithStripPrefix(a.config.StripPrefix),
	)
	if err != nil {
		return nil, errors.NewConfigError("enhancer", "invalid enrichment settings", err)
	}

	all := make([]merger.Option, 0, len(opts)+1)
	all = append(all, merger.WithEnhancer(e))
	all = append(all, opts...)
	return merger.New(all...)
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return &errors.ValidationError{Field: "config", Message: "cannot be nil"}
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithStdout redirects command output.
func WithStdout(w io.Writer) Option {
	return func(a *App) error {
		a.stdout = w
		return nil
	}
}

// WithStderr redirects error output.
func WithStderr(w io.Writer) Option {
	return func(a *App) error {
		a.stderr = w
		return nil
	}
}

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)
