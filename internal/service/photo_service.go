package service

import (
	"context"
	"fmt"

	"github.com/HansLagmay/realestate-coordination-service/internal/domain/entity"
	"github.com/HansLagmay/realestate-coordination-service/internal/platform/logger"
	"github.com/HansLagmay/realestate-coordination-service/internal/store"
)

// ObjectStorage offloads photo payloads out of the record store. Satisfied
// by the MinIO adapter.
type ObjectStorage interface {
	Upload(ctx context.Context, originalFilename string, payload []byte) (string, error)
	Fetch(ctx context.Context, objectKey string) ([]byte, error)
	Remove(ctx context.Context, objectKey string) error
}

type AddPhotoParams struct {
	PropertyID string
	Filename   string
	DataURI    string
}

type PhotoService interface {
	Add(ctx context.Context, params AddPhotoParams) (*entity.Photo, error)
	ByProperty(ctx context.Context, propertyID string) []entity.Photo
	// Payload returns the inline data URI, fetching from object storage when
	// the record only carries an object key.
	Payload(ctx context.Context, photo entity.Photo) (string, error)
	Delete(ctx context.Context, id string) error
}

type photoService struct {
	store   *store.Store
	objects ObjectStorage
	log     logger.Logger
}

// NewPhotoService builds the service. objects may be nil; payloads then stay
// inline in the photos collection.
func NewPhotoService(st *store.Store, objects ObjectStorage, log logger.Logger) PhotoService {
	return &photoService{store: st, objects: objects, log: log}
}

func (s *photoService) Add(ctx context.Context, params AddPhotoParams) (*entity.Photo, error) {
	if params.PropertyID == "" {
		return nil, fmt.Errorf("photo must reference a property")
	}
	if params.DataURI == "" {
		return nil, fmt.Errorf("photo payload cannot be empty")
	}

	photo := entity.Photo{
		PropertyID: params.PropertyID,
		Filename:   params.Filename,
		DataURI:    params.DataURI,
	}

	if s.objects != nil {
		objectKey, err := s.objects.Upload(ctx, params.Filename, []byte(params.DataURI))
		if err != nil {
			return nil, fmt.Errorf("failed to offload photo payload: %w", err)
		}
		photo.ObjectKey = objectKey
		photo.DataURI = ""
	}

	created, err := s.store.AddPhoto(ctx, photo)
	if err != nil {
		return nil, fmt.Errorf("failed to save photo: %w", err)
	}
	return created, nil
}

func (s *photoService) ByProperty(ctx context.Context, propertyID string) []entity.Photo {
	return s.store.PhotosByProperty(ctx, propertyID)
}

func (s *photoService) Payload(ctx context.Context, photo entity.Photo) (string, error) {
	if photo.ObjectKey == "" {
		return photo.DataURI, nil
	}
	if s.objects == nil {
		return "", fmt.Errorf("photo %s is offloaded but no object storage is configured", photo.ID)
	}
	payload, err := s.objects.Fetch(ctx, photo.ObjectKey)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

func (s *photoService) Delete(ctx context.Context, id string) error {
	photo, err := s.store.FindPhoto(ctx, id)
	if err == nil && photo.ObjectKey != "" && s.objects != nil {
		if removeErr := s.objects.Remove(ctx, photo.ObjectKey); removeErr != nil {
			s.log.Warnf("Failed to remove offloaded payload %s for photo %s: %v", photo.ObjectKey, id, removeErr)
		}
	}
	if _, err := s.store.RemovePhoto(ctx, id); err != nil {
		return fmt.Errorf("failed to delete photo %s: %w", id, err)
	}
	return nil
}
