package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrEmptyConnectionURL     = errors.New("empty mongo connection URL")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
	ErrSaveFailed             = errors.New("failed to save form snapshot to mongo")
	ErrLoadFailed             = errors.New("failed to load form snapshot from mongo")
)
