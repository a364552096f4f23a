package form

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formstate/pkg/async"
	"github.com/dmitrymomot/formstate/pkg/logger"
)

// startPass validates values in the background and applies the result if it
// is still the newest one.
func (c *Controller) startPass(rev uint64, values Values) {
	c.passes.add()
	go func() {
		defer c.passes.done()
		c.runPass(rev, values)
	}()
}

// runPass validates values on its own goroutine, waits for the result and
// applies it. ok is false when the validator panicked or the controller was
// closed before it finished.
func (c *Controller) runPass(rev uint64, values Values) (errs Errors, ok bool) {
	start := time.Now()
	future := async.Async(c.ctx, values, func(ctx context.Context, v Values) (Errors, error) {
		return c.validate(ctx, v), nil
	})

	errs, err := future.AwaitContext(c.ctx)
	if err != nil {
		if errors.Is(err, async.ErrPanic) {
			c.log.Error("validator panicked", logger.Revision(rev), logger.Error(err))
		} else {
			c.log.Debug("validation pass abandoned", logger.Revision(rev), logger.Error(err))
		}
		return nil, false
	}

	c.applyPass(rev, errs, time.Since(start))
	return errs, true
}

func (c *Controller) applyPass(rev uint64, errs Errors, took time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if rev <= c.applied {
		c.log.Debug("stale validation pass dropped", logger.Revision(rev), logger.Duration(took))
		return
	}

	c.applied = rev
	c.errors = cloneErrors(errs)
	c.persistLocked()

	c.log.Debug("validation pass applied",
		logger.Revision(rev),
		logger.Duration(took),
		slog.Int("errors", len(c.errors)),
	)
}
