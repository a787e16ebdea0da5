package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/HansLagmay/realestate-coordination-service/internal/domain/entity"
	"github.com/HansLagmay/realestate-coordination-service/internal/storage"
)

// CurrentSession returns the persisted session, or nil when no user is
// logged in or the record is unreadable.
func (s *Store) CurrentSession(ctx context.Context) *entity.Session {
	key := s.Key(CollectionCurrentUser)
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.log.Warnf("Failed to read session %s, treating as logged out: %v", key, err)
		}
		return nil
	}

	var session entity.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		s.log.Warnf("Corrupt session under %s, treating as logged out: %v", key, err)
		return nil
	}
	return &session
}

func (s *Store) SetCurrentSession(ctx context.Context, session entity.Session) error {
	key := s.Key(CollectionCurrentUser)
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.backend.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write session %s: %w", key, err)
	}
	s.publish(ctx, key, data)
	return nil
}

func (s *Store) ClearCurrentSession(ctx context.Context) error {
	key := s.Key(CollectionCurrentUser)
	if err := s.backend.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear session %s: %w", key, err)
	}
	s.publish(ctx, key, nil)
	return nil
}
