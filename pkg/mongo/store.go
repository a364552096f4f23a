package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/formstate/pkg/storage"
)

// Collection is the subset of *mongo.Collection used by Store.
type Collection interface {
	UpdateOne(ctx context.Context, filter any, update any, opts ...options.Lister[options.UpdateOneOptions]) (*mongo.UpdateResult, error)
	FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
}

type snapshotDoc struct {
	Key       string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Store keeps one document per form name, with the snapshot bytes in "data".
type Store struct {
	coll Collection
	now  func() time.Time
}

// NewStore wraps coll.
func NewStore(coll Collection) *Store {
	return &Store{coll: coll, now: time.Now}
}

// Save upserts the document for key.
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return storage.ErrEmptyKey
	}
	update := bson.M{"$set": bson.M{"data": data, "updated_at": s.now().UTC()}}
	if _, err := s.coll.UpdateOne(ctx, bson.M{"_id": key}, update, options.UpdateOne().SetUpsert(true)); err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	return nil
}

// Load returns the snapshot bytes stored for key, or storage.ErrNotFound.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, storage.ErrEmptyKey
	}
	var doc snapshotDoc
	if err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrNotFound
		}
		return nil, errors.Join(ErrLoadFailed, err)
	}
	return doc.Data, nil
}
