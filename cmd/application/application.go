// Package application provides the application interface for cafmerge commands.
//
// Commands accept this interface rather than the concrete App type so they
// can be tested with Mock.
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            m, err := app.Merger()
//	            if err != nil {
//	                return err
//	            }
//	            // ... run the merge
//	            return nil
//	        },
//	    }
//	}
package application

import (
	"github.com/rs/zerolog"

	"github.com/aztfmod/cafmerge/pkg/merger"
)

// Application provides what commands need from the app.
type Application interface {
	// Merger returns a merger configured from the application config.
	// opts are applied after the configured defaults.
	Merger(opts ...merger.Option) (*merger.Merger, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json or yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string
}
