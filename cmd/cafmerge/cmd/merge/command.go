// Package merge implements the merge command, which combines the documented
// and out-of-docs resource definition files into one file.
package merge

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aztfmod/cafmerge/cmd/application"
	"github.com/aztfmod/cafmerge/internal/cmd/emoji"
	"github.com/aztfmod/cafmerge/pkg/errors"
	"github.com/aztfmod/cafmerge/pkg/logging"
	"github.com/aztfmod/cafmerge/pkg/merger"
)

// argCount is the number of positional arguments: documented input,
// undocumented input, output.
const argCount = 3

// NewCommand creates the merge command using app context.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cafmerge <documented> <undocumented> <output>",
		Short: "Merge documented and out-of-docs resource definitions",
		Long: `Merge combines the documented resource definition file with the
out-of-docs definition file into a single file sorted by name.

Every definition is enriched from the official Cloud Adoption Framework
abbreviation table: resource and resource_provider_namespace are taken from
the table when the name is known, and slug is filled in when missing.
Definitions from the out-of-docs file are marked with "out_of_doc": true.

Files ending in .yaml or .yml are read and written as YAML, anything else
as JSON.

A first argument named after a subcommand (reference, version, man) runs
that subcommand. Pass such a file with a path, for example ./reference.`,
		Example: `  cafmerge resourceDefinition.json resourceDefinition_out_of_docs.json resourceDefinition.json`,
		Args:    validateArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, err := cmd.Flags().GetBool("dry-run")
			if err != nil {
				return err
			}
			return run(cmd, app, args, dryRun)
		},
	}

	cmd.Flags().Bool("dry-run", false, "run the merge without writing the output file")

	return cmd
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) != argCount {
		return fmt.Errorf("%w: accepts %d arg(s), received %d\nUsage: %s",
			errors.ErrInvalidInput, argCount, len(args), cmd.UseLine())
	}
	return nil
}

func run(cmd *cobra.Command, app application.Application, args []string, dryRun bool) error {
	m, err := app.Merger(merger.WithDryRun(dryRun))
	if err != nil {
		return err
	}

	ctx := logging.WithLogger(cmd.Context(), app.Logger())
	ctx = logging.WithOperation(ctx, "merge")

	result, err := m.Run(ctx, merger.Paths{
		Documented:   args[0],
		Undocumented: args[1],
		Output:       args[2],
	})
	if err != nil {
		return err
	}

	symbol := emoji.Success
	if result.DryRun {
		symbol = emoji.Warning
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", symbol, result.Summary())
	return nil
}
