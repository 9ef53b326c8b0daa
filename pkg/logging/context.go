package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type contextKey int

const loggerKey contextKey = iota

// WithLogger stores a logger in the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in ctx, or the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// Ctx is a short alias for FromContext.
func Ctx(ctx context.Context) *zerolog.Logger {
	return FromContext(ctx)
}

// withField returns a context whose logger carries key=value.
func withField(ctx context.Context, key string, value any) context.Context {
	logCtx := FromContext(ctx).With()
	switch v := value.(type) {
	case string:
		logCtx = logCtx.Str(key, v)
	case int:
		logCtx = logCtx.Int(key, v)
	case bool:
		logCtx = logCtx.Bool(key, v)
	case error:
		logCtx = logCtx.AnErr(key, v)
	default:
		logCtx = logCtx.Interface(key, v)
	}
	logger := logCtx.Logger()
	return WithLogger(ctx, &logger)
}

// WithBird tags log lines with the bird name being processed.
func WithBird(ctx context.Context, name string) context.Context {
	return withField(ctx, "bird", name)
}

// WithSource tags log lines with the resolver source in use.
func WithSource(ctx context.Context, source string) context.Context {
	return withField(ctx, "source", source)
}

// WithOperation tags log lines with the running operation.
func WithOperation(ctx context.Context, operation string) context.Context {
	return withField(ctx, "operation", operation)
}

// WithRunID tags log lines with the id of one update run.
func WithRunID(ctx context.Context, id string) context.Context {
	return withField(ctx, "run_id", id)
}
