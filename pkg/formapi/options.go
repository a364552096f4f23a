package formapi

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/formstate/pkg/httpserver"
)

// Option configures an API.
type Option func(*API)

// WithStore enables GET /persisted, reading snapshots back from store.
func WithStore(store Loader) Option {
	return func(a *API) { a.store = store }
}

// WithStatusFunc sets how per-field status is computed in views.
func WithStatusFunc(fn StatusFunc) Option {
	return func(a *API) {
		if fn != nil {
			a.status = fn
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

// WithHealthChecks registers readiness probes served on GET /healthz.
func WithHealthChecks(checks ...httpserver.Check) Option {
	return func(a *API) { a.checks = append(a.checks, checks...) }
}

// WithOptions sets the choice lists served on GET /options, keyed by field.
func WithOptions(options map[string]any) Option {
	return func(a *API) { a.options = options }
}

// WithSettleTimeout bounds how long an event request waits for validation.
func WithSettleTimeout(d time.Duration) Option {
	return func(a *API) {
		if d > 0 {
			a.settleTimeout = d
		}
	}
}
