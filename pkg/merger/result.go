package merger

import (
	"fmt"

	"github.com/aztfmod/cafmerge/pkg/resources"
)

// Result reports what a merge did. The counts are diagnostic only.
type Result struct {
	Documented   int
	Undocumented int
	Total        int
	OutOfDoc     int
	Matched      int
	Synthesized  int

	// Output is the destination path, written unless DryRun is set
	Output string
	DryRun bool

	// Records is the merged collection in output order
	Records []resources.Record
}

// Summary returns a one-line description of the result.
func (r *Result) Summary() string {
	verb := "Merged"
	if r.DryRun {
		verb = "Would merge"
	}
	return fmt.Sprintf("%s %d resource definitions (%d documented, %d out of doc) into %s",
		verb, r.Total, r.Documented, r.OutOfDoc, r.Output)
}
