package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type contextKey struct{}

// WithLogger stores logger in ctx. A nil logger stores the default one.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey{}).(*zerolog.Logger); ok && logger != nil {
			return logger
		}
	}
	return Default()
}

// WithFields returns a context whose logger carries fields.
func WithFields(ctx context.Context, fields map[string]any) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context { return c.Fields(fields) })
}

// WithSource tags the context logger with the file being processed.
func WithSource(ctx context.Context, path string) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context { return c.Str("source", path) })
}

// WithOperation tags the context logger with the running operation.
func WithOperation(ctx context.Context, operation string) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context { return c.Str("operation", operation) })
}

// WithError attaches err to the context logger. A nil err is a no-op.
func WithError(ctx context.Context, err error) context.Context {
	if err == nil {
		return ctx
	}
	return derive(ctx, func(c zerolog.Context) zerolog.Context { return c.Err(err) })
}

func derive(ctx context.Context, add func(zerolog.Context) zerolog.Context) context.Context {
	logger := add(FromContext(ctx).With()).Logger()
	return WithLogger(ctx, &logger)
}
