package form

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formstate/pkg/logger"
	"github.com/dmitrymomot/formstate/pkg/statemachine"
)

// Phase is the submission phase of a controller.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSubmitting Phase = "submitting"
)

type trigger string

const (
	triggerSubmit   trigger = "submit"
	triggerRejected trigger = "rejected"
	triggerSettled  trigger = "settled"
)

// phaseData is passed to Fire so the leave-submitting guard can see how many
// submissions are still running.
type phaseData struct {
	inflight int
}

func noneInFlight(_ context.Context, _ Phase, _ trigger, data any) bool {
	d, ok := data.(phaseData)
	return ok && d.inflight == 0
}

func newPhaseMachine(log *slog.Logger) *statemachine.Machine[Phase, trigger] {
	return statemachine.New(PhaseIdle,
		statemachine.WithTransitions([]Phase{PhaseIdle, PhaseSubmitting}, PhaseSubmitting, triggerSubmit),
		statemachine.WithTransition(PhaseSubmitting, PhaseIdle, triggerRejected,
			statemachine.WithGuard(noneInFlight)),
		statemachine.WithTransition(PhaseSubmitting, PhaseIdle, triggerSettled,
			statemachine.WithGuard(noneInFlight)),
		statemachine.WithHook(func(ctx context.Context, from, to Phase, event trigger) {
			log.DebugContext(ctx, "submission phase changed",
				logger.Transition(string(from), string(to), string(event)))
		}),
	)
}

// Phase returns the current submission phase.
func (c *Controller) Phase() Phase {
	return c.phase.Current()
}

// firePhaseLocked must be called with c.mu held.
func (c *Controller) firePhaseLocked(t trigger) {
	err := c.phase.Fire(context.WithoutCancel(c.ctx), t, phaseData{inflight: c.inflight})
	if err != nil && !statemachine.IsTransitionRejectedError(err) {
		c.log.Error("unexpected submission phase event", logger.Event(string(t)), logger.Error(err))
	}
}
