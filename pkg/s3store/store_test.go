package s3store_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formstate/pkg/s3store"
	"github.com/dmitrymomot/formstate/pkg/storage"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.PutObjectOutput)
	return out, args.Error(1)
}

func (m *mockClient) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.GetObjectOutput)
	return out, args.Error(1)
}

func newStore(t *testing.T, client *mockClient) *s3store.Store {
	t.Helper()
	store, err := s3store.New(context.Background(), s3store.Config{
		Bucket: "forms",
		Region: "eu-west-1",
		Prefix: "snapshots/",
	}, s3store.WithClient(client))
	require.NoError(t, err)
	return store
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := s3store.New(context.Background(), s3store.Config{Region: "eu-west-1"})
	assert.ErrorIs(t, err, s3store.ErrInvalidConfig)

	_, err = s3store.New(context.Background(), s3store.Config{Bucket: "forms"})
	assert.ErrorIs(t, err, s3store.ErrInvalidConfig)
}

func TestStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("puts object under prefix", func(t *testing.T) {
		t.Parallel()
		var body []byte
		client := &mockClient{}
		client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
			return *in.Bucket == "forms" &&
				*in.Key == "snapshots/todolistform" &&
				*in.ContentType == "application/json" &&
				*in.ContentLength == int64(len(`{"name":"todolistform"}`))
		})).Run(func(args mock.Arguments) {
			body, _ = io.ReadAll(args.Get(1).(*s3.PutObjectInput).Body)
		}).Return(&s3.PutObjectOutput{}, nil)

		err := newStore(t, client).Save(context.Background(), "todolistform", []byte(`{"name":"todolistform"}`))
		require.NoError(t, err)
		assert.Equal(t, `{"name":"todolistform"}`, string(body))
		client.AssertExpectations(t)
	})

	t.Run("access denied", func(t *testing.T) {
		t.Parallel()
		client := &mockClient{}
		client.On("PutObject", mock.Anything, mock.Anything).
			Return(nil, &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"})

		err := newStore(t, client).Save(context.Background(), "todolistform", []byte("{}"))
		assert.ErrorIs(t, err, s3store.ErrSaveFailed)
		assert.ErrorIs(t, err, s3store.ErrAccessDenied)
	})

	t.Run("rejects empty key", func(t *testing.T) {
		t.Parallel()
		err := newStore(t, &mockClient{}).Save(context.Background(), "", nil)
		assert.ErrorIs(t, err, storage.ErrEmptyKey)
	})
}

func TestStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("reads object body", func(t *testing.T) {
		t.Parallel()
		client := &mockClient{}
		client.On("GetObject", mock.Anything, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
			return *in.Key == "snapshots/todolistform"
		})).Return(&s3.GetObjectOutput{
			Body: io.NopCloser(bytes.NewReader([]byte(`{"values":{}}`))),
		}, nil)

		data, err := newStore(t, client).Load(context.Background(), "todolistform")
		require.NoError(t, err)
		assert.Equal(t, `{"values":{}}`, string(data))
	})

	t.Run("no such key", func(t *testing.T) {
		t.Parallel()
		client := &mockClient{}
		client.On("GetObject", mock.Anything, mock.Anything).Return(nil, &types.NoSuchKey{})

		_, err := newStore(t, client).Load(context.Background(), "todolistform")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("missing bucket", func(t *testing.T) {
		t.Parallel()
		client := &mockClient{}
		client.On("GetObject", mock.Anything, mock.Anything).Return(nil, &types.NoSuchBucket{})

		_, err := newStore(t, client).Load(context.Background(), "todolistform")
		assert.ErrorIs(t, err, s3store.ErrLoadFailed)
		assert.ErrorIs(t, err, s3store.ErrBucketNotFound)
	})

	t.Run("generic failure", func(t *testing.T) {
		t.Parallel()
		client := &mockClient{}
		client.On("GetObject", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

		_, err := newStore(t, client).Load(context.Background(), "todolistform")
		assert.ErrorIs(t, err, s3store.ErrLoadFailed)
		assert.NotErrorIs(t, err, storage.ErrNotFound)
	})
}

var _ storage.Store = (*s3store.Store)(nil)
