package enhancer

import (
	"github.com/aztfmod/cafmerge/pkg/constants"
	"github.com/aztfmod/cafmerge/pkg/errors"
	"github.com/aztfmod/cafmerge/pkg/reference"
)

// options configures an Enhancer.
type options struct {
	table            reference.Table
	unknownNamespace string
	labelPrefix      string
	stripPrefix      string
}

func defaultOptions() *options {
	return &options{
		table:            reference.Default(),
		unknownNamespace: constants.UnknownNamespace,
		labelPrefix:      constants.LabelPrefix,
		stripPrefix:      constants.ResourceTypePrefix,
	}
}

// Option is a function that configures an Enhancer.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithTable sets the reference table definitions are matched against.
func WithTable(table reference.Table) Option {
	return func(o *options) error {
		if table == nil {
			return &errors.ValidationError{
				Field:   "table",
				Message: "cannot be nil",
			}
		}
		o.table = table
		return nil
	}
}

// WithUnknownNamespace sets the resource_provider_namespace placeholder for
// unmatched definitions.
func WithUnknownNamespace(namespace string) Option {
	return func(o *options) error {
		if namespace == "" {
			return &errors.ValidationError{
				Field:   "unknown_namespace",
				Value:   namespace,
				Message: "cannot be empty",
			}
		}
		o.unknownNamespace = namespace
		return nil
	}
}

// WithLabelPrefix sets the word prepended to synthesized resource labels.
// An empty prefix yields bare title-cased labels.
func WithLabelPrefix(prefix string) Option {
	return func(o *options) error {
		o.labelPrefix = prefix
		return nil
	}
}

// WithStripPrefix sets the resource type token removed before a label is
// synthesized.
func WithStripPrefix(prefix string) Option {
	return func(o *options) error {
		o.stripPrefix = prefix
		return nil
	}
}
