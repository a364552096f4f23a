// Package todo defines the demo todo form: its fields, initial values,
// validation rules, option lists and a delayed submit action.
//
//	submitter := todo.Submitter{Logger: log}
//	ctrl, err := todo.New(submitter.Submit, true, form.WithLogger(log))
package todo
