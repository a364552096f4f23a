package form

import "errors"

var (
	ErrNilValidator = errors.New("form: validator is required")
	ErrEmptyName    = errors.New("form: name is required when persistence is enabled")
	ErrUnknownCodec = errors.New("form: unknown codec")
)
