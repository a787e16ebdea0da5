package store

import (
	"context"
	"time"

	"github.com/HansLagmay/realestate-coordination-service/internal/domain/entity"
	"github.com/HansLagmay/realestate-coordination-service/internal/storage"
)

func (s *Store) Sales(ctx context.Context) []entity.Sale {
	return getCollection[entity.Sale](ctx, s, CollectionSales)
}

func (s *Store) PutSales(ctx context.Context, sales []entity.Sale) error {
	return putCollection(ctx, s, CollectionSales, sales)
}

func (s *Store) FindSale(ctx context.Context, id string) (*entity.Sale, error) {
	for _, sale := range s.Sales(ctx) {
		if sale.ID == id {
			return &sale, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) AddSale(ctx context.Context, sale entity.Sale) (*entity.Sale, error) {
	sale.ID = generateID("sale")
	sale.CreatedAt = time.Now().UTC()

	sales := append(s.Sales(ctx), sale)
	if err := s.PutSales(ctx, sales); err != nil {
		return nil, err
	}
	return &sale, nil
}
