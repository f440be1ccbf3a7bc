package application

import (
	"github.com/rs/zerolog"

	"github.com/aztfmod/cafmerge/pkg/merger"
)

// Mock provides a mock implementation of Application for testing.
// If a function field is nil, the method returns a default value.
type Mock struct {
	MergerFunc       func(opts ...merger.Option) (*merger.Merger, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
}

// Merger returns a merger using the mock function or a default merger.
func (m *Mock) Merger(opts ...merger.Option) (*merger.Merger, error) {
	if m.MergerFunc != nil {
		return m.MergerFunc(opts...)
	}
	return merger.New(opts...)
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "json".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "json"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Ensure Mock implements Application at compile time.
var _ Application = (*Mock)(nil)
