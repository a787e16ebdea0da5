package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/HansLagmay/realestate-coordination-service/internal/domain/entity"
	"github.com/HansLagmay/realestate-coordination-service/internal/storage"
)

// Photos reads the photo collection. Legacy writers initialized the key with
// an empty object instead of an array; any non-array value is normalized to
// an empty collection.
func (s *Store) Photos(ctx context.Context) []entity.Photo {
	key := s.Key(CollectionPhotos)
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.log.Warnf("Failed to read collection %s, treating as empty: %v", key, err)
		}
		return nil
	}

	var photos []entity.Photo
	if err := json.Unmarshal(raw, &photos); err != nil {
		var sentinel map[string]json.RawMessage
		if err := json.Unmarshal(raw, &sentinel); err != nil {
			s.log.Warnf("Corrupt data under %s, treating as empty: %v", key, err)
		}
		return nil
	}
	return photos
}

func (s *Store) PutPhotos(ctx context.Context, photos []entity.Photo) error {
	return putCollection(ctx, s, CollectionPhotos, photos)
}

func (s *Store) FindPhoto(ctx context.Context, id string) (*entity.Photo, error) {
	for _, photo := range s.Photos(ctx) {
		if photo.ID == id {
			return &photo, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) AddPhoto(ctx context.Context, photo entity.Photo) (*entity.Photo, error) {
	photo.ID = generateID("photo")
	photo.UploadedAt = time.Now().UTC()

	photos := append(s.Photos(ctx), photo)
	if err := s.PutPhotos(ctx, photos); err != nil {
		return nil, err
	}
	return &photo, nil
}

func (s *Store) PhotosByProperty(ctx context.Context, propertyID string) []entity.Photo {
	var matched []entity.Photo
	for _, photo := range s.Photos(ctx) {
		if photo.PropertyID == propertyID {
			matched = append(matched, photo)
		}
	}
	return matched
}

func (s *Store) RemovePhoto(ctx context.Context, id string) (bool, error) {
	photos := s.Photos(ctx)
	kept := photos[:0:0]
	for _, photo := range photos {
		if photo.ID != id {
			kept = append(kept, photo)
		}
	}
	if len(kept) == len(photos) {
		return false, nil
	}
	if err := s.PutPhotos(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}
