// Package validator provides small, composable validation rules.
//
// A Rule pairs a Check function with the ValidationError to report when the
// check fails. Rules are evaluated with Apply, which returns a ValidationErrors
// slice (an error) listing every failure in rule order, or nil.
//
// Form validators usually want one display message per field. Messages runs a
// set of rules and keeps the first failing message for each field, so rule
// order doubles as message priority:
//
//	errs := validator.Messages(
//	    validator.WithMessage(validator.Present("description", values["description"]), "Description required"),
//	    validator.When(d != "", validator.WithMessage(validator.MinLen("description", d, 6),
//	        "Description must have at least 6 characters")),
//	    validator.WithMessage(validator.Present("state", values["state"]), "State required"),
//	)
//
// The package is stateless; every helper only builds a Rule value.
package validator
