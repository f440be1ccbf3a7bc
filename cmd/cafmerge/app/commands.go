package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/aztfmod/cafmerge/cmd/cafmerge/cmd/reference"
)

// CreateReferenceCommand creates the reference command with app dependencies.
func (a *App) CreateReferenceCommand() *cobra.Command {
	return reference.NewCommand(a)
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("cafmerge %s\n", a.version)
			cmd.Printf("  commit:   %s\n", a.commit)
			cmd.Printf("  built:    %s\n", a.date)
			cmd.Printf("  built by: %s\n", a.builtBy)
		},
	}
}

// CreateManCommand creates the hidden man command, which writes the
// cafmerge(1) man page to stdout.
func (a *App) CreateManCommand() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  "Generate man page",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "CAFMERGE",
				Section: "1",
				Source:  "cafmerge " + a.version,
				Manual:  "cafmerge Manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
