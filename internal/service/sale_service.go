package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/HansLagmay/realestate-coordination-service/internal/domain/entity"
	"github.com/HansLagmay/realestate-coordination-service/internal/platform/logger"
	"github.com/HansLagmay/realestate-coordination-service/internal/storage"
	"github.com/HansLagmay/realestate-coordination-service/internal/store"
)

type RecordSaleParams struct {
	PropertyID string
	AgentID    string
	BuyerName  string
	BuyerEmail string
	BuyerPhone string
	Price      float64
	// Commission defaults to entity.DefaultCommissionRate of Price when zero.
	Commission float64
	Date       string
	Notes      string
}

type SaleTotals struct {
	Count           int
	TotalValue      float64
	TotalCommission float64
}

type SaleService interface {
	Record(ctx context.Context, params RecordSaleParams) (*entity.Sale, error)
	List(ctx context.Context) []entity.Sale
	ByAgent(ctx context.Context, agentID string) []entity.Sale
	Totals(ctx context.Context) SaleTotals
}

type saleService struct {
	store *store.Store
	log   logger.Logger
}

func NewSaleService(st *store.Store, log logger.Logger) SaleService {
	return &saleService{store: st, log: log}
}

// Record persists the sale and, as a side effect of creation, forces the
// referenced property to sold with the sale's date stamped as its sold date.
func (s *saleService) Record(ctx context.Context, params RecordSaleParams) (*entity.Sale, error) {
	if params.PropertyID == "" {
		return nil, fmt.Errorf("sale must reference a property")
	}
	if params.Price < 0 {
		return nil, fmt.Errorf("sale price cannot be negative")
	}

	commission := params.Commission
	if commission == 0 {
		commission = params.Price * entity.DefaultCommissionRate
	}

	sale := entity.Sale{
		PropertyID: params.PropertyID,
		AgentID:    params.AgentID,
		BuyerName:  params.BuyerName,
		BuyerEmail: params.BuyerEmail,
		BuyerPhone: params.BuyerPhone,
		Price:      params.Price,
		Commission: commission,
		Date:       params.Date,
		Notes:      params.Notes,
	}

	created, err := s.store.AddSale(ctx, sale)
	if err != nil {
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	_, err = s.store.UpdateProperty(ctx, params.PropertyID, func(p *entity.Property) {
		p.MarkSold(params.Date)
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Dangling property reference; the sale still stands.
			s.log.Warnf("Sale %s references missing property %s", created.ID, params.PropertyID)
		} else {
			return nil, fmt.Errorf("failed to mark property %s as sold: %w", params.PropertyID, err)
		}
	}

	s.log.Infof("Sale %s recorded for property %s at %.2f (commission %.2f)", created.ID, created.PropertyID, created.Price, created.Commission)
	return created, nil
}

func (s *saleService) List(ctx context.Context) []entity.Sale {
	return s.store.Sales(ctx)
}

func (s *saleService) ByAgent(ctx context.Context, agentID string) []entity.Sale {
	var matched []entity.Sale
	for _, sale := range s.store.Sales(ctx) {
		if sale.AgentID == agentID {
			matched = append(matched, sale)
		}
	}
	return matched
}

func (s *saleService) Totals(ctx context.Context) SaleTotals {
	var totals SaleTotals
	for _, sale := range s.store.Sales(ctx) {
		totals.Count++
		totals.TotalValue += sale.Price
		totals.TotalCommission += sale.Commission
	}
	return totals
}
