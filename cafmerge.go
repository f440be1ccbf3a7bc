// Package cafmerge merges the documented and out-of-docs Azure Cloud Adoption
// Framework resource definition files into one enriched definition file.
//
// The CLI in cmd/cafmerge is a thin wrapper over Run. Library users that need
// more control build a merger.Merger directly.
package cafmerge

import (
	"context"

	"github.com/aztfmod/cafmerge/pkg/merger"
	"github.com/aztfmod/cafmerge/pkg/resources"
)

// Run merges the definitions stored at documented and undocumented and
// writes the result to output.
func Run(ctx context.Context, documented, undocumented, output string, opts ...merger.Option) (*merger.Result, error) {
	m, err := merger.New(opts...)
	if err != nil {
		return nil, err
	}
	return m.Run(ctx, merger.Paths{
		Documented:   documented,
		Undocumented: undocumented,
		Output:       output,
	})
}

// Merge enriches and combines in-memory collections using the default
// reference table. The inputs are modified in place.
func Merge(documented, undocumented []resources.Record) ([]resources.Record, error) {
	m, err := merger.New()
	if err != nil {
		return nil, err
	}
	combined, _ := m.Merge(documented, undocumented)
	return combined, nil
}
