package storage

import "context"

// Store persists opaque snapshots under a key. Implementations must be safe for
// concurrent use.
type Store interface {
	// Save stores data under key, replacing any previous value.
	Save(ctx context.Context, key string, data []byte) error

	// Load returns the value stored under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
}
