// Package formapi exposes a form controller over HTTP as JSON input events.
//
// Routes:
//
//	GET  /           current view
//	POST /change     {"field":"description","value":"buy milk","kind":"text"}
//	POST /blur       {"field":"description"}
//	POST /set        {"field":"state","value":"active"}
//	POST /submit     starts a submission, answers 202
//	POST /reset      restores initial values
//	GET  /persisted  raw persisted snapshot (needs WithStore)
//	GET  /options    choice lists (WithOptions)
//	GET  /healthz    readiness probes (WithHealthChecks)
//
// Event routes wait for the validation they triggered before answering, so
// the returned view already carries the errors for the new values. They never
// wait for the submit action itself; poll GET / to see isSubmitting clear.
//
// Nothing is rendered here. The view is the controller snapshot plus isValid
// and a per-field status computed by the configured StatusFunc.
package formapi
