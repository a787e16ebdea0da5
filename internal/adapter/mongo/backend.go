package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/HansLagmay/realestate-coordination-service/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "blobs"

// Backend keeps one document per storage key, with the whole serialized
// collection in a single field. Set is a full-document upsert, preserving the
// store's replace-the-blob write semantics (last writer wins, no merge).
type Backend struct {
	coll *mongo.Collection
}

type blobDocument struct {
	Key   string `bson:"_id"`
	Value []byte `bson:"value"`
}

func NewBackend(client *mongo.Client, database string) *Backend {
	return &Backend{coll: client.Database(database).Collection(collectionName)}
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	var doc blobDocument
	err := b.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read blob %s from mongodb: %w", key, err)
	}
	return doc.Value, nil
}

func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	doc := blobDocument{Key: key, Value: value}
	_, err := b.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to write blob %s to mongodb: %w", key, err)
	}
	return nil
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	if _, err := b.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("failed to delete blob %s from mongodb: %w", key, err)
	}
	return nil
}
