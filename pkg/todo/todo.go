package todo

import (
	"context"

	"github.com/dmitrymomot/formstate/pkg/form"
	"github.com/dmitrymomot/formstate/pkg/validator"
)

// FormName is the name (and persistence key) of the todo form.
const FormName = "todolistform"

// Field names.
const (
	FieldDescription = "description"
	FieldState       = "state"
	FieldCheckbox    = "checkbox_value"
	FieldRadio       = "radio_value"
)

// Validation messages.
const (
	MsgDescriptionRequired = "Description required"
	MsgDescriptionTooShort = "Description must have at least 6 characters"
	MsgStateRequired       = "State required"
)

// MinDescriptionLen is the shortest accepted description, in characters.
const MinDescriptionLen = 6

// InitialValues returns a fresh copy of the todo form's initial values.
func InitialValues() form.Values {
	return form.Values{
		FieldDescription: "",
		FieldState:       "",
		FieldCheckbox:    false,
		FieldRadio:       "a",
	}
}

// Validate checks a todo values snapshot.
func Validate(_ context.Context, values form.Values) form.Errors {
	desc, descIsText := values[FieldDescription].(string)

	return validator.Messages(
		validator.WithMessage(validator.Present(FieldDescription, values[FieldDescription]), MsgDescriptionRequired),
		validator.When(descIsText && desc != "",
			validator.WithMessage(validator.MinLen(FieldDescription, desc, MinDescriptionLen), MsgDescriptionTooShort)),
		validator.WithMessage(validator.Present(FieldState, values[FieldState]), MsgStateRequired),
	)
}

// Params returns controller parameters for the todo form.
func Params(submit form.SubmitFunc, persist bool) form.Params {
	return form.Params{
		Name:     FormName,
		Initial:  InitialValues(),
		Validate: Validate,
		Submit:   submit,
		Persist:  persist,
	}
}

// New creates a controller for the todo form.
func New(submit form.SubmitFunc, persist bool, opts ...form.Option) (*form.Controller, error) {
	return form.New(Params(submit, persist), opts...)
}

// ValidateStatus returns the feedback status for a field: empty while the
// field is untouched, "error" when it has a message and "success" otherwise.
func ValidateStatus(touched bool, errs form.Errors, field string) string {
	if !touched {
		return ""
	}
	if _, ok := errs[field]; ok {
		return "error"
	}
	return "success"
}
