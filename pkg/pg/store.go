package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/formstate/pkg/storage"
)

const (
	upsertSnapshotSQL = `INSERT INTO form_snapshots (key, data, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`

	selectSnapshotSQL = `SELECT data FROM form_snapshots WHERE key = $1`
)

// DB is the subset of *pgxpool.Pool used by Store.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store keeps form snapshots in the form_snapshots table created by Migrate.
type Store struct {
	db DB
}

// NewStore wraps db.
func NewStore(db DB) *Store {
	return &Store{db: db}
}

// Save upserts data under key.
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return storage.ErrEmptyKey
	}
	if _, err := s.db.Exec(ctx, upsertSnapshotSQL, key, data); err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	return nil
}

// Load returns the data stored under key, or storage.ErrNotFound.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, storage.ErrEmptyKey
	}
	var data []byte
	if err := s.db.QueryRow(ctx, selectSnapshotSQL, key).Scan(&data); err != nil {
		if IsNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, errors.Join(ErrLoadFailed, err)
	}
	return data, nil
}
