package form

import (
	"context"
	"log/slog"
)

// Option configures a Controller.
type Option func(*Controller)

// WithStore sets the persistence target. Defaults to storage.Default().
func WithStore(s Store) Option {
	return func(c *Controller) {
		if s != nil {
			c.store = s
		}
	}
}

// WithCodec sets the snapshot encoding. Defaults to JSONCodec.
func WithCodec(codec Codec) Option {
	return func(c *Controller) {
		if codec != nil {
			c.codec = codec
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithSubmitErrorHandler registers fn to receive submit action failures,
// including recovered panics. Without it failures are only logged at debug level.
func WithSubmitErrorHandler(fn func(ctx context.Context, err error)) Option {
	return func(c *Controller) {
		c.onSubmitError = fn
	}
}

// WithContext sets the base context for background work. Close cancels a
// context derived from it.
func WithContext(ctx context.Context) Option {
	return func(c *Controller) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}
