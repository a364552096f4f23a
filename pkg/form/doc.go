// Package form provides a controller that owns the state of a single form:
// field values, touched flags, validation errors and the submitting flag.
//
// Every mutation starts a validation pass over a copy of the values. Passes
// run in the background and are tagged with a revision; a result is applied
// only if no newer pass has been applied already, so stale results never
// overwrite fresh ones. Reset supersedes every pass started before it.
//
// Basic usage:
//
//	ctrl, err := form.New(form.Params{
//		Name:     "todolistform",
//		Initial:  form.Values{"description": ""},
//		Validate: validate,
//		Submit:   submit,
//		Persist:  true,
//	}, form.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	defer ctrl.Close()
//
//	ctrl.HandleChange("description", "buy milk", form.InputText)
//	ctrl.HandleBlur("description")
//	_ = ctrl.WaitValidation(ctx)
//	state := ctrl.Snapshot()
//
// # Submission
//
// Submit touches every field, validates once more and, when the validator
// returns no errors, calls the submit action with that snapshot. Failures and
// panics of the action are absorbed; WithSubmitErrorHandler observes them.
//
// # Persistence
//
// With Params.Persist set, the full State is encoded (JSONCodec by default)
// after every change and written to the Store under the form name. Writes are
// fire-and-forget and coalesced so that only the latest snapshot is written.
// The controller never reads the store back.
package form
