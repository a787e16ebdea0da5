package store

import (
	"context"
	"time"

	"github.com/HansLagmay/realestate-coordination-service/internal/domain/entity"
	"github.com/HansLagmay/realestate-coordination-service/internal/storage"
)

func (s *Store) Properties(ctx context.Context) []entity.Property {
	return getCollection[entity.Property](ctx, s, CollectionProperties)
}

func (s *Store) PutProperties(ctx context.Context, properties []entity.Property) error {
	return putCollection(ctx, s, CollectionProperties, properties)
}

func (s *Store) FindProperty(ctx context.Context, id string) (*entity.Property, error) {
	for _, p := range s.Properties(ctx) {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) AddProperty(ctx context.Context, property entity.Property) (*entity.Property, error) {
	property.ID = generateID("prop")
	property.CreatedAt = time.Now().UTC()

	properties := append(s.Properties(ctx), property)
	if err := s.PutProperties(ctx, properties); err != nil {
		return nil, err
	}
	return &property, nil
}

// UpdateProperty applies a partial mutation to the record and writes the
// collection back. Returns storage.ErrNotFound when the id is absent.
func (s *Store) UpdateProperty(ctx context.Context, id string, apply func(*entity.Property)) (*entity.Property, error) {
	properties := s.Properties(ctx)
	for i := range properties {
		if properties[i].ID != id {
			continue
		}
		apply(&properties[i])
		properties[i].UpdatedAt = time.Now().UTC()
		if err := s.PutProperties(ctx, properties); err != nil {
			return nil, err
		}
		updated := properties[i]
		return &updated, nil
	}
	return nil, storage.ErrNotFound
}

// RemoveProperty deletes only the property record. Dependent inquiries,
// appointments, and photos are the caller's responsibility.
func (s *Store) RemoveProperty(ctx context.Context, id string) (bool, error) {
	properties := s.Properties(ctx)
	kept := properties[:0:0]
	for _, p := range properties {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(properties) {
		return false, nil
	}
	if err := s.PutProperties(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}
