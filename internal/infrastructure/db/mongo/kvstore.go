package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kusinadelights/recipe-platform/internal/core/ports"
)

const collectionBlobs = "collection_blobs"

// blobDoc stores one collection payload, keyed by its logical storage key.
type blobDoc struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// KeyValueStore implements ports.KeyValueStore on a MongoDB database. One
// document per collection key keeps the string-in/string-out contract of
// the opaque store intact.
type KeyValueStore struct {
	col *mongo.Collection
}

var _ ports.KeyValueStore = (*KeyValueStore)(nil)

// NewKeyValueStore wraps the given database.
func NewKeyValueStore(db *mongo.Database) *KeyValueStore {
	return &KeyValueStore{col: db.Collection(collectionBlobs)}
}

// GetItem returns the stored value, or the empty string when the key is
// absent.
func (s *KeyValueStore) GetItem(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc blobDoc
	err := s.col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		return "", fmt.Errorf("mongo get %s: %w", key, err)
	}
	return doc.Value, nil
}

func (s *KeyValueStore) SetItem(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := s.col.ReplaceOne(
		ctx,
		bson.M{"_id": key},
		blobDoc{Key: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("mongo set %s: %w", key, err)
	}
	return nil
}

func (s *KeyValueStore) RemoveItem(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := s.col.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("mongo del %s: %w", key, err)
	}
	return nil
}
