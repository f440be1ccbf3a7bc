// Package reference implements the reference command, which prints the
// compiled-in abbreviation table used to enrich resource definitions.
package reference

import (
	"github.com/spf13/cobra"

	"github.com/aztfmod/cafmerge/cmd/application"
	"github.com/aztfmod/cafmerge/internal/cmd/output"
	"github.com/aztfmod/cafmerge/pkg/reference"
	"github.com/aztfmod/cafmerge/pkg/resources"
)

// NewCommand creates the reference command using app context.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reference",
		Aliases: []string{"ref"},
		Short:   "Print the reference abbreviation table",
		Long: `Reference prints every entry of the compiled-in abbreviation table.

JSON and YAML output use the same shape merged definitions use: name,
resource, resource_provider_namespace and slug. Without --format the
configured format is used, or a table when stdout is a terminal.`,
		Example: `  cafmerge reference
  cafmerge reference --format yaml
  cafmerge reference --format markdown > abbreviations.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := cmd.Flags().GetString("format")
			if err != nil {
				return err
			}
			if name == "" {
				name = app.OutputFormat()
			}
			format, err := output.ParseFormat(string(output.DetectFormat(name)))
			if err != nil {
				return err
			}

			var data any = Records()
			if format == output.FormatTable || format == output.FormatMarkdown {
				data = Table()
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
		},
	}

	cmd.Flags().StringP("format", "f", "", "output format: table, json, yaml, markdown")

	return cmd
}

// Records converts the reference table into definition records sorted by name.
func Records() []resources.Record {
	entries := reference.Entries()
	records := make([]resources.Record, len(entries))
	for i, e := range entries {
		records[i] = resources.NewRecord(
			resources.FieldName, e.Name,
			resources.FieldResource, e.Resource,
			resources.FieldResourceProviderNamespace, e.ResourceProviderNamespace,
			resources.FieldSlug, e.Slug,
		)
	}
	return records
}

// Table returns the reference table as rows sorted by name.
func Table() output.Data {
	entries := reference.Entries()
	data := output.Data{
		Headers: []string{"Name", "Resource", "Namespace", "Slug"},
		Rows:    make([][]string, len(entries)),
	}
	for i, e := range entries {
		data.Rows[i] = []string{e.Name, e.Resource, e.ResourceProviderNamespace, e.Slug}
	}
	return data
}
