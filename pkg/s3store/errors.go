package s3store

import "errors"

var (
	ErrInvalidConfig      = errors.New("s3store: bucket and region are required")
	ErrFailedToLoadConfig = errors.New("s3store: failed to load aws config")
	ErrBucketNotFound     = errors.New("s3store: bucket not found")
	ErrAccessDenied       = errors.New("s3store: access denied")
	ErrSaveFailed         = errors.New("s3store: failed to save form snapshot")
	ErrLoadFailed         = errors.New("s3store: failed to load form snapshot")
)
