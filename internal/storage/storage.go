package storage

import "context"

// Backend is the whole-blob key-value contract the record store runs on.
// Every collection is read and written as one serialized unit; there is no
// partial or range access. Implementations: in-process map, Redis, MongoDB.
type Backend interface {
	// Get returns the raw blob stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set replaces the blob stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
