package form

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formstate/pkg/async"
	"github.com/dmitrymomot/formstate/pkg/logger"
)

// Submit marks every field in values as touched, flips the controller into the
// submitting phase and validates the current values in the background. If the
// validator returns no errors the submit action is invoked once with that
// snapshot; otherwise the errors are stored and the action is skipped. Either
// way the submitting flag clears when the attempt settles.
//
// Submitting again while a submission is pending is allowed; the flag stays set
// until the last one settles.
func (c *Controller) Submit() {
	c.mu.Lock()
	touched := make(Touched, len(c.values))
	for k := range c.values {
		touched[k] = true
	}
	c.touched = touched
	c.inflight++
	c.firePhaseLocked(triggerSubmit)
	c.revision++
	rev := c.revision
	snapshot := cloneValues(c.values)
	c.persistLocked()
	c.mu.Unlock()

	c.log.Info("submission started", logger.Revision(rev))

	c.passes.add()
	c.submissions.add()
	go func() {
		defer c.submissions.done()
		c.runSubmission(rev, snapshot)
	}()
}

// runSubmission owns one c.passes slot, released once validation is done.
func (c *Controller) runSubmission(rev uint64, values Values) {
	errs, ok := c.runPass(rev, values)
	c.passes.done()

	if !ok || len(errs) > 0 {
		c.settle(triggerRejected)
		c.log.Info("submission rejected", logger.Revision(rev), slog.Int("errors", len(errs)))
		return
	}

	start := time.Now()
	if c.submit != nil {
		_, err := async.Go(c.ctx, func(ctx context.Context) error {
			return c.submit(ctx, cloneValues(values))
		}).AwaitContext(c.ctx)
		if err != nil {
			c.log.Debug("submit action failed", logger.Revision(rev), logger.Error(err))
			if c.onSubmitError != nil && c.ctx.Err() == nil {
				c.onSubmitError(c.ctx, err)
			}
		}
	}

	c.settle(triggerSettled)
	c.log.Info("submission settled", logger.Revision(rev), logger.Duration(time.Since(start)))
}

func (c *Controller) settle(t trigger) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.inflight--
	c.firePhaseLocked(t)
	c.persistLocked()
}
