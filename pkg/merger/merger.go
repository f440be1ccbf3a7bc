// Package merger combines the documented and undocumented resource
// definition collections into one enriched collection sorted by name.
//
// The pipeline is strictly sequential: load documented, load undocumented,
// enrich both, combine, sort, write. The first load or write failure aborts
// the run; nothing is written when a load fails.
package merger

import (
	"context"

	"github.com/aztfmod/cafmerge/pkg/enhancer"
	"github.com/aztfmod/cafmerge/pkg/logging"
	"github.com/aztfmod/cafmerge/pkg/resources"
)

// Loader reads a definition collection from a named source.
type Loader interface {
	Load(path string) ([]resources.Record, error)
}

// Writer writes a definition collection to a named destination.
type Writer interface {
	Save(path string, records []resources.Record) error
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(path string) ([]resources.Record, error)

// Load calls f(path).
func (f LoaderFunc) Load(path string) ([]resources.Record, error) {
	return f(path)
}

// WriterFunc adapts a function to the Writer interface.
type WriterFunc func(path string, records []resources.Record) error

// Save calls f(path, records).
func (f WriterFunc) Save(path string, records []resources.Record) error {
	return f(path, records)
}

// Paths names the two inputs and the output of a merge.
type Paths struct {
	Documented   string
	Undocumented string
	Output       string
}

// Merger runs the load, enrich, combine and write pipeline.
type Merger struct {
	options *options
}

// New creates a Merger reading and writing files unless overridden.
func New(opts ...Option) (*Merger, error) {
	o, err := defaultOptions()
	if err != nil {
		return nil, err
	}
	if o, err = o.apply(opts...); err != nil {
		return nil, err
	}
	return &Merger{options: o}, nil
}

// Run merges the collections named by paths. The returned error is an
// *errors.LoadError or *errors.WriteError.
func (m *Merger) Run(ctx context.Context, paths Paths) (*Result, error) {
	logger := logging.FromContext(ctx)
	logger.Info().Msg("Loading resource definition files")

	documented, err := m.load(ctx, paths.Documented)
	if err != nil {
		return nil, err
	}
	undocumented, err := m.load(ctx, paths.Undocumented)
	if err != nil {
		return nil, err
	}

	combined, stats := m.Merge(documented, undocumented)

	result := &Result{
		Documented:   len(documented),
		Undocumented: len(undocumented),
		Total:        len(combined),
		OutOfDoc:     stats.Flagged,
		Matched:      stats.Matched,
		Synthesized:  stats.Synthesized,
		Output:       paths.Output,
		DryRun:       m.options.dryRun,
		Records:      combined,
	}

	logger.Info().
		Int("total", result.Total).
		Int("matched", result.Matched).
		Int("synthesized", result.Synthesized).
		Msg("Combined resource definitions")
	logger.Info().Int("out_of_doc", result.OutOfDoc).Msg("Resources marked as out_of_doc")

	if m.options.dryRun {
		logger.Info().Str("path", paths.Output).Msg("Dry run, skipping write")
		return result, nil
	}

	if err := m.options.writer.Save(paths.Output, combined); err != nil {
		return nil, err
	}
	logger.Info().Str("path", paths.Output).Msg("Saved combined resource definitions")

	return result, nil
}

// Merge enriches both collections in place and returns their sorted
// combination with the enrichment counts.
func (m *Merger) Merge(documented, undocumented []resources.Record) ([]resources.Record, enhancer.Stats) {
	var stats enhancer.Stats
	stats.Add(m.options.enhancer.EnhanceAll(documented, resources.OriginDocumented))
	stats.Add(m.options.enhancer.EnhanceAll(undocumented, resources.OriginUndocumented))
	return Combine(documented, undocumented), stats
}

func (m *Merger) load(ctx context.Context, path string) ([]resources.Record, error) {
	logger := logging.FromContext(logging.WithSource(ctx, path))

	records, err := m.options.loader.Load(path)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load resource definitions")
		return nil, err
	}

	logger.Info().Int("count", len(records)).Msg("Loaded resource definitions")
	return records, nil
}
