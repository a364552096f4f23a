package pg_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate/pkg/pg"
	"github.com/dmitrymomot/formstate/pkg/storage"
)

type mockDB struct {
	mock.Mock
}

func (m *mockDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	called := m.Called(ctx, sql, args)
	return called.Get(0).(pgconn.CommandTag), called.Error(1)
}

func (m *mockDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	called := m.Called(ctx, sql, args)
	return called.Get(0).(pgx.Row)
}

func (m *mockDB) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type fakeRow struct {
	data []byte
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.data
	return nil
}

func TestStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("upserts snapshot", func(t *testing.T) {
		t.Parallel()
		db := &mockDB{}
		db.On("Exec", mock.Anything, mock.MatchedBy(func(sql string) bool {
			return containsAll(sql, "INSERT INTO form_snapshots", "ON CONFLICT (key)")
		}), []any{"todolistform", []byte("{}")}).Return(pgconn.NewCommandTag("INSERT 0 1"), nil)

		err := pg.NewStore(db).Save(context.Background(), "todolistform", []byte("{}"))
		require.NoError(t, err)
		db.AssertExpectations(t)
	})

	t.Run("wraps exec errors", func(t *testing.T) {
		t.Parallel()
		db := &mockDB{}
		db.On("Exec", mock.Anything, mock.Anything, mock.Anything).
			Return(pgconn.CommandTag{}, errors.New("relation does not exist"))

		err := pg.NewStore(db).Save(context.Background(), "todolistform", []byte("{}"))
		assert.ErrorIs(t, err, pg.ErrSaveFailed)
	})

	t.Run("rejects empty key", func(t *testing.T) {
		t.Parallel()
		err := pg.NewStore(&mockDB{}).Save(context.Background(), "", nil)
		assert.ErrorIs(t, err, storage.ErrEmptyKey)
	})
}

func TestStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("returns data", func(t *testing.T) {
		t.Parallel()
		db := &mockDB{}
		db.On("QueryRow", mock.Anything, mock.Anything, []any{"todolistform"}).
			Return(fakeRow{data: []byte(`{"name":"todolistform"}`)})

		data, err := pg.NewStore(db).Load(context.Background(), "todolistform")
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"todolistform"}`, string(data))
	})

	t.Run("no rows", func(t *testing.T) {
		t.Parallel()
		db := &mockDB{}
		db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(fakeRow{err: pgx.ErrNoRows})

		_, err := pg.NewStore(db).Load(context.Background(), "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("query failure", func(t *testing.T) {
		t.Parallel()
		db := &mockDB{}
		db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(fakeRow{err: errors.New("conn reset")})

		_, err := pg.NewStore(db).Load(context.Background(), "todolistform")
		assert.ErrorIs(t, err, pg.ErrLoadFailed)
	})
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	up := &mockDB{}
	up.On("Ping", mock.Anything).Return(nil)
	assert.NoError(t, pg.Healthcheck(up)(context.Background()))

	down := &mockDB{}
	down.On("Ping", mock.Anything).Return(errors.New("refused"))
	assert.ErrorIs(t, pg.Healthcheck(down)(context.Background()), pg.ErrHealthcheckFailed)
}

func TestConnect_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := pg.Connect(context.Background(), pg.Config{})
	assert.ErrorIs(t, err, pg.ErrEmptyConnectionString)

	_, err = pg.Connect(context.Background(), pg.Config{ConnectionString: "postgres://%zz"})
	assert.ErrorIs(t, err, pg.ErrFailedToParseDBConfig)
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, pg.IsNotFoundError(pgx.ErrNoRows))
	assert.False(t, pg.IsNotFoundError(nil))
	assert.False(t, pg.IsNotFoundError(errors.New("other")))
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}

var _ storage.Store = (*pg.Store)(nil)
