// Package ctxlog carries a *zap.Logger through context.Context.
package ctxlog

import (
	"context"

	"go.uber.org/zap"
)

// key is unexported to prevent collisions with other packages' keys.
type key struct{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// FromContext returns the logger in ctx, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(key{}).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return zap.NewNop()
}
