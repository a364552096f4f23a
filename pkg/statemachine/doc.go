// Package statemachine provides a small, generic finite state machine.
//
// States and events are any comparable types, usually string-based constants:
//
//	type Phase string
//	type Trigger string
//
//	machine := statemachine.New[Phase, Trigger]("idle",
//	    statemachine.WithTransition[Phase, Trigger]("idle", "submitting", "submit"),
//	    statemachine.WithTransition[Phase, Trigger]("submitting", "idle", "settled"),
//	)
//
//	_ = machine.Fire(ctx, "submit", nil)
//
// # Guards, Actions and Hooks
//
// Guards veto a transition based on runtime data. Actions run after all guards
// pass and before the state changes; an action error aborts the transition.
// Hooks observe completed transitions and are invoked outside the machine's
// lock, so they may safely read Current.
//
// Several transitions may share a from/event pair; the first one whose guards
// pass is taken, which lets callers express priority by registration order.
//
// # Errors
//
// Fire returns *ErrNoTransitionAvailable when nothing is registered for the
// current state and event, and *ErrTransitionRejected when every candidate was
// vetoed by a guard. Use IsNoTransitionAvailableError and
// IsTransitionRejectedError to classify them.
package statemachine
