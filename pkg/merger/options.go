package merger

import (
	"github.com/aztfmod/cafmerge/pkg/enhancer"
	"github.com/aztfmod/cafmerge/pkg/errors"
	"github.com/aztfmod/cafmerge/pkg/files"
)

type options struct {
	loader   Loader
	writer   Writer
	enhancer *enhancer.Enhancer
	dryRun   bool
}

func defaultOptions() (*options, error) {
	e, err := enhancer.New()
	if err != nil {
		return nil, err
	}
	return &options{
		loader:   LoaderFunc(files.Load),
		writer:   WriterFunc(files.Save),
		enhancer: e,
	}, nil
}

// Option is a function that configures a Merger.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithLoader replaces the file loader.
func WithLoader(loader Loader) Option {
	return func(o *options) error {
		if loader == nil {
			return &errors.ValidationError{Field: "loader", Message: "cannot be nil"}
		}
		o.loader = loader
		return nil
	}
}

// WithWriter replaces the file writer.
func WithWriter(writer Writer) Option {
	return func(o *options) error {
		if writer == nil {
			return &errors.ValidationError{Field: "writer", Message: "cannot be nil"}
		}
		o.writer = writer
		return nil
	}
}

// WithEnhancer sets the enhancer applied to both collections.
func WithEnhancer(e *enhancer.Enhancer) Option {
	return func(o *options) error {
		if e == nil {
			return &errors.ValidationError{Field: "enhancer", Message: "cannot be nil"}
		}
		o.enhancer = e
		return nil
	}
}

// WithDryRun runs the whole pipeline but skips writing the output.
func WithDryRun(enabled bool) Option {
	return func(o *options) error {
		o.dryRun = enabled
		return nil
	}
}
