// Package enhancer fills the descriptive fields of resource definitions from
// the reference table and marks definitions that come from the undocumented
// collection.
//
// For a definition whose name is in the table, resource and
// resource_provider_namespace are always replaced by the table values while
// slug is only filled when missing. For any other definition the fields are
// filled only when missing: resource with a label derived from the name and
// resource_provider_namespace with a placeholder.
package enhancer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aztfmod/cafmerge/pkg/reference"
	"github.com/aztfmod/cafmerge/pkg/resources"
)

// Enhancer enriches resource definitions. It holds no mutable state and the
// same input always produces the same output.
type Enhancer struct {
	options *options
}

// Stats counts what an EnhanceAll pass did.
type Stats struct {
	Total       int
	Matched     int
	Synthesized int
	Flagged     int
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.Total += other.Total
	s.Matched += other.Matched
	s.Synthesized += other.Synthesized
	s.Flagged += other.Flagged
}

// New creates an Enhancer using the official table unless overridden.
func New(opts ...Option) (*Enhancer, error) {
	o, err := defaultOptions().apply(opts...)
	if err != nil {
		return nil, err
	}
	return &Enhancer{options: o}, nil
}

// Enhance enriches rec in place and reports whether its name matched a
// reference entry. Undocumented records are flagged before any field is
// filled, so a new out_of_doc key lands right after the existing ones.
func (e *Enhancer) Enhance(rec *resources.Record, origin resources.Origin) bool {
	name := rec.Name()

	if origin == resources.OriginUndocumented {
		rec.Set(resources.FieldOutOfDoc, true)
	}

	entry, matched := e.options.table.Lookup(name)
	if matched {
		rec.Set(resources.FieldResource, entry.Resource)
		rec.Set(resources.FieldResourceProviderNamespace, entry.ResourceProviderNamespace)
		rec.SetDefault(resources.FieldSlug, entry.Slug)
	} else {
		if !rec.Has(resources.FieldResource) {
			rec.Set(resources.FieldResource, e.Label(name))
		}
		rec.SetDefault(resources.FieldResourceProviderNamespace, e.options.unknownNamespace)
	}

	return matched
}

// EnhanceAll enriches every record in place.
func (e *Enhancer) EnhanceAll(records []resources.Record, origin resources.Origin) Stats {
	stats := Stats{Total: len(records)}
	for i := range records {
		hadResource := records[i].Has(resources.FieldResource)
		if e.Enhance(&records[i], origin) {
			stats.Matched++
		} else if !hadResource {
			stats.Synthesized++
		}
		if origin == resources.OriginUndocumented {
			stats.Flagged++
		}
	}
	return stats
}

// Label derives a display name from a resource type name:
// "azurerm_storage_account" becomes "Azure Storage Account".
// The result is never empty.
func (e *Enhancer) Label(name string) string {
	words := strings.ReplaceAll(strings.TrimPrefix(name, e.options.stripPrefix), "_", " ")
	words = cases.Title(language.English).String(words)

	label := strings.TrimSpace(e.options.labelPrefix + " " + words)
	if label == "" {
		return e.options.unknownNamespace
	}
	return label
}

// Table returns the reference table the Enhancer matches against.
func (e *Enhancer) Table() reference.Table {
	return e.options.table
}
