package store

import (
	"context"
	"time"

	"github.com/HansLagmay/realestate-coordination-service/internal/domain/entity"
	"github.com/HansLagmay/realestate-coordination-service/internal/storage"
)

func (s *Store) Inquiries(ctx context.Context) []entity.Inquiry {
	return getCollection[entity.Inquiry](ctx, s, CollectionInquiries)
}

func (s *Store) PutInquiries(ctx context.Context, inquiries []entity.Inquiry) error {
	return putCollection(ctx, s, CollectionInquiries, inquiries)
}

func (s *Store) FindInquiry(ctx context.Context, id string) (*entity.Inquiry, error) {
	for _, inq := range s.Inquiries(ctx) {
		if inq.ID == id {
			return &inq, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) AddInquiry(ctx context.Context, inquiry entity.Inquiry) (*entity.Inquiry, error) {
	inquiry.ID = generateID("inq")
	inquiry.CreatedAt = time.Now().UTC()

	inquiries := append(s.Inquiries(ctx), inquiry)
	if err := s.PutInquiries(ctx, inquiries); err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (s *Store) UpdateInquiry(ctx context.Context, id string, apply func(*entity.Inquiry)) (*entity.Inquiry, error) {
	inquiries := s.Inquiries(ctx)
	for i := range inquiries {
		if inquiries[i].ID != id {
			continue
		}
		apply(&inquiries[i])
		inquiries[i].UpdatedAt = time.Now().UTC()
		if err := s.PutInquiries(ctx, inquiries); err != nil {
			return nil, err
		}
		updated := inquiries[i]
		return &updated, nil
	}
	return nil, storage.ErrNotFound
}

func (s *Store) RemoveInquiry(ctx context.Context, id string) (bool, error) {
	inquiries := s.Inquiries(ctx)
	kept := inquiries[:0:0]
	for _, inq := range inquiries {
		if inq.ID != id {
			kept = append(kept, inq)
		}
	}
	if len(kept) == len(inquiries) {
		return false, nil
	}
	if err := s.PutInquiries(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}
