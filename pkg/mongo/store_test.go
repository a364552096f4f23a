package mongo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	driver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/dmitrymomot/formstate/pkg/mongo"
	"github.com/dmitrymomot/formstate/pkg/storage"
)

type mockCollection struct {
	mock.Mock
}

func (m *mockCollection) UpdateOne(ctx context.Context, filter any, update any, opts ...options.Lister[options.UpdateOneOptions]) (*driver.UpdateResult, error) {
	args := m.Called(ctx, filter, update)
	res, _ := args.Get(0).(*driver.UpdateResult)
	return res, args.Error(1)
}

func (m *mockCollection) FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *driver.SingleResult {
	args := m.Called(ctx, filter)
	return args.Get(0).(*driver.SingleResult)
}

type mockPinger struct {
	mock.Mock
}

func (m *mockPinger) Ping(ctx context.Context, rp *readpref.ReadPref) error {
	return m.Called(ctx).Error(0)
}

func TestStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("upserts by form name", func(t *testing.T) {
		t.Parallel()
		coll := &mockCollection{}
		coll.On("UpdateOne", mock.Anything, bson.M{"_id": "todolistform"}, mock.MatchedBy(func(update bson.M) bool {
			set, ok := update["$set"].(bson.M)
			return ok && string(set["data"].([]byte)) == `{"name":"todolistform"}`
		})).Return(&driver.UpdateResult{UpsertedCount: 1}, nil)

		err := mongo.NewStore(coll).Save(context.Background(), "todolistform", []byte(`{"name":"todolistform"}`))
		require.NoError(t, err)
		coll.AssertExpectations(t)
	})

	t.Run("wraps driver errors", func(t *testing.T) {
		t.Parallel()
		coll := &mockCollection{}
		coll.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("not primary"))

		err := mongo.NewStore(coll).Save(context.Background(), "todolistform", []byte("{}"))
		assert.ErrorIs(t, err, mongo.ErrSaveFailed)
	})

	t.Run("rejects empty key", func(t *testing.T) {
		t.Parallel()
		err := mongo.NewStore(&mockCollection{}).Save(context.Background(), "", nil)
		assert.ErrorIs(t, err, storage.ErrEmptyKey)
	})
}

func TestStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("decodes data", func(t *testing.T) {
		t.Parallel()
		coll := &mockCollection{}
		doc := bson.M{"_id": "todolistform", "data": []byte(`{"values":{}}`)}
		coll.On("FindOne", mock.Anything, bson.M{"_id": "todolistform"}).
			Return(driver.NewSingleResultFromDocument(doc, nil, nil))

		data, err := mongo.NewStore(coll).Load(context.Background(), "todolistform")
		require.NoError(t, err)
		assert.Equal(t, `{"values":{}}`, string(data))
	})

	t.Run("missing document", func(t *testing.T) {
		t.Parallel()
		coll := &mockCollection{}
		coll.On("FindOne", mock.Anything, mock.Anything).
			Return(driver.NewSingleResultFromDocument(bson.D{}, driver.ErrNoDocuments, nil))

		_, err := mongo.NewStore(coll).Load(context.Background(), "todolistform")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("driver failure", func(t *testing.T) {
		t.Parallel()
		coll := &mockCollection{}
		coll.On("FindOne", mock.Anything, mock.Anything).
			Return(driver.NewSingleResultFromDocument(bson.D{}, errors.New("socket closed"), nil))

		_, err := mongo.NewStore(coll).Load(context.Background(), "todolistform")
		assert.ErrorIs(t, err, mongo.ErrLoadFailed)
	})
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	up := &mockPinger{}
	up.On("Ping", mock.Anything).Return(nil)
	assert.NoError(t, mongo.Healthcheck(up)(context.Background()))

	down := &mockPinger{}
	down.On("Ping", mock.Anything).Return(errors.New("server selection timeout"))
	assert.ErrorIs(t, mongo.Healthcheck(down)(context.Background()), mongo.ErrHealthcheckFailed)
}

func TestNew_EmptyURL(t *testing.T) {
	t.Parallel()

	_, err := mongo.New(context.Background(), mongo.Config{})
	assert.ErrorIs(t, err, mongo.ErrEmptyConnectionURL)
}

var _ storage.Store = (*mongo.Store)(nil)
