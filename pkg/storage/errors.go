package storage

import "errors"

var (
	ErrNotFound = errors.New("storage: key not found")
	ErrEmptyKey = errors.New("storage: empty key")
)
