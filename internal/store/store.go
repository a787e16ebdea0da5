// Package store implements the record store: typed CRUD over whole-collection
// JSON blobs held in a pluggable key-value backend. Every operation loads and
// rewrites a collection as one unit; writes from another context landing
// between a read and its write-back are lost (last writer wins, no merge).
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/HansLagmay/realestate-coordination-service/internal/notify"
	"github.com/HansLagmay/realestate-coordination-service/internal/platform/logger"
	"github.com/HansLagmay/realestate-coordination-service/internal/storage"
)

const DefaultNamespace = "realestate:"

// Collection names. The storage key is the namespace plus the name.
const (
	CollectionProperties   = "properties"
	CollectionUsers        = "users"
	CollectionInquiries    = "inquiries"
	CollectionAppointments = "appointments"
	CollectionSales        = "sales"
	CollectionPhotos       = "photos"
	CollectionCurrentUser  = "current_user"
)

type Store struct {
	backend   storage.Backend
	broker    notify.Broker
	log       logger.Logger
	namespace string
}

type Option func(*Store)

// WithBroker makes the store publish a change event after every successful
// write. Publishing is best-effort: a failed publish is logged, never
// propagated.
func WithBroker(broker notify.Broker) Option {
	return func(s *Store) { s.broker = broker }
}

func WithLogger(log logger.Logger) Option {
	return func(s *Store) { s.log = log }
}

func WithNamespace(namespace string) Option {
	return func(s *Store) { s.namespace = namespace }
}

func New(backend storage.Backend, opts ...Option) *Store {
	s := &Store{
		backend:   backend,
		log:       logger.NoOp{},
		namespace: DefaultNamespace,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the storage key for a collection name.
func (s *Store) Key(collection string) string {
	return s.namespace + collection
}

func (s *Store) Namespace() string {
	return s.namespace
}

// getCollection reads a whole collection. Any read or parse failure yields an
// empty collection: unreadable or corrupt state is discarded, never surfaced
// to callers.
func getCollection[T any](ctx context.Context, s *Store, collection string) []T {
	key := s.Key(collection)
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.log.Warnf("Failed to read collection %s, treating as empty: %v", key, err)
		}
		return nil
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		s.log.Warnf("Corrupt data under %s, treating as empty: %v", key, err)
		return nil
	}
	return records
}

// putCollection serializes and replaces a whole collection, then publishes
// the change event.
func putCollection[T any](ctx context.Context, s *Store, collection string, records []T) error {
	if records == nil {
		records = []T{}
	}
	key := s.Key(collection)
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal collection %s: %w", key, err)
	}
	if err := s.backend.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", key, err)
	}
	s.publish(ctx, key, data)
	return nil
}

func (s *Store) publish(ctx context.Context, key string, value []byte) {
	if s.broker == nil {
		return
	}
	if err := s.broker.Publish(ctx, notify.Event{Key: key, Value: value}); err != nil {
		s.log.Warnf("Failed to publish change event for %s: %v", key, err)
	}
}
