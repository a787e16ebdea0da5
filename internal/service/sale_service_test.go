package service

import (
	"context"
	"testing"

	"github.com/HansLagmay/realestate-coordination-service/internal/domain/entity"
	"github.com/HansLagmay/realestate-coordination-service/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDefaultsCommissionToThreePercent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	svc := NewSaleService(st, logger.NoOp{})

	prop, err := st.AddProperty(ctx, entity.Property{Title: "Seaside Villa", Status: entity.PropertyAvailable, Price: 420000})
	require.NoError(t, err)

	sale, err := svc.Record(ctx, RecordSaleParams{
		PropertyID: prop.ID,
		AgentID:    "user_agent1",
		BuyerName:  "Ana Reyes",
		Price:      420000,
		Date:       "2024-04-01",
	})
	require.NoError(t, err)
	assert.InDelta(t, 12600.0, sale.Commission, 0.001)
}

func TestRecordKeepsExplicitCommission(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	svc := NewSaleService(st, logger.NoOp{})

	prop, err := st.AddProperty(ctx, entity.Property{Title: "Downtown Loft", Status: entity.PropertyAvailable, Price: 300000})
	require.NoError(t, err)

	sale, err := svc.Record(ctx, RecordSaleParams{
		PropertyID: prop.ID,
		Price:      300000,
		Commission: 15000,
		Date:       "2024-05-20",
	})
	require.NoError(t, err)
	assert.InDelta(t, 15000.0, sale.Commission, 0.001)
}

func TestRecordMarksPropertySold(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	svc := NewSaleService(st, logger.NoOp{})

	prop, err := st.AddProperty(ctx, entity.Property{Title: "Garden Townhouse", Status: entity.PropertyAvailable, Price: 250000})
	require.NoError(t, err)

	_, err = svc.Record(ctx, RecordSaleParams{PropertyID: prop.ID, Price: 250000, Date: "2024-06-15"})
	require.NoError(t, err)

	sold, err := st.FindProperty(ctx, prop.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PropertySold, sold.Status)
	assert.Equal(t, "2024-06-15", sold.SoldDate)
}

func TestRecordSurvivesDanglingProperty(t *testing.T) {
	ctx := context.Background()
	svc := NewSaleService(newTestStore(), logger.NoOp{})

	sale, err := svc.Record(ctx, RecordSaleParams{PropertyID: "prop_gone", Price: 100000, Date: "2024-07-01"})
	require.NoError(t, err)
	assert.NotEmpty(t, sale.ID)
	assert.Len(t, svc.List(ctx), 1)
}

func TestRecordRejectsNegativePrice(t *testing.T) {
	svc := NewSaleService(newTestStore(), logger.NoOp{})
	_, err := svc.Record(context.Background(), RecordSaleParams{PropertyID: "prop_x", Price: -1})
	assert.Error(t, err)
}

func TestTotalsAggregateValueAndCommission(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	svc := NewSaleService(st, logger.NoOp{})

	_, err := svc.Record(ctx, RecordSaleParams{PropertyID: "prop_a", AgentID: "user_agent1", Price: 100000, Date: "2024-01-10"})
	require.NoError(t, err)
	_, err = svc.Record(ctx, RecordSaleParams{PropertyID: "prop_b", AgentID: "user_agent2", Price: 200000, Date: "2024-02-10"})
	require.NoError(t, err)

	totals := svc.Totals(ctx)
	assert.Equal(t, 2, totals.Count)
	assert.InDelta(t, 300000.0, totals.TotalValue, 0.001)
	assert.InDelta(t, 9000.0, totals.TotalCommission, 0.001)

	assert.Len(t, svc.ByAgent(ctx, "user_agent1"), 1)
	assert.Empty(t, svc.ByAgent(ctx, "user_agent3"))
}
