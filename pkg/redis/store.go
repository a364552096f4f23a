package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/formstate/pkg/storage"
)

// Client is the subset of redis.UniversalClient used by Store.
type Client interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Store keeps form snapshots as plain Redis string values.
type Store struct {
	client Client
	prefix string
	ttl    time.Duration
}

// NewStore wraps client. Keys are stored as prefix+name and expire after ttl
// (zero means no expiry).
func NewStore(client Client, prefix string, ttl time.Duration) *Store {
	return &Store{client: client, prefix: prefix, ttl: ttl}
}

// NewStoreFromConfig is NewStore with the prefix and TTL taken from cfg.
func NewStoreFromConfig(client Client, cfg Config) *Store {
	return NewStore(client, cfg.KeyPrefix, cfg.TTL)
}

// Save writes data under key.
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return storage.ErrEmptyKey
	}
	if err := s.client.Set(ctx, s.prefix+key, data, s.ttl).Err(); err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	return nil
}

// Load reads the data stored under key. Returns storage.ErrNotFound when the key is missing.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, storage.ErrEmptyKey
	}
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, errors.Join(ErrLoadFailed, err)
	}
	return data, nil
}
