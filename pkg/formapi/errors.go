package formapi

import "errors"

var (
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingField         = errors.New("field is required")
	ErrPersistenceDisabled  = errors.New("persistence is not configured")
	ErrNotPersisted         = errors.New("form has not been persisted")
)
