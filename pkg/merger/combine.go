package merger

import (
	"sort"

	"github.com/aztfmod/cafmerge/pkg/resources"
)

// Combine concatenates the documented and undocumented definitions and
// sorts the result by name. The sort is stable, so definitions sharing a
// name keep their input order with documented ones first.
func Combine(documented, undocumented []resources.Record) []resources.Record {
	combined := make([]resources.Record, 0, len(documented)+len(undocumented))
	combined = append(combined, documented...)
	combined = append(combined, undocumented...)

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Name() < combined[j].Name()
	})
	return combined
}
