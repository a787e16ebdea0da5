package service

import (
	"context"
	"testing"

	"github.com/HansLagmay/realestate-coordination-service/internal/adapter/memory"
	"github.com/HansLagmay/realestate-coordination-service/internal/domain/entity"
	"github.com/HansLagmay/realestate-coordination-service/internal/platform/logger"
	"github.com/HansLagmay/realestate-coordination-service/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, to []string, subject, bodyText string) error {
	args := m.Called(ctx, to, subject, bodyText)
	return args.Error(0)
}

func newTestStore() *store.Store {
	return store.New(memory.NewBackend())
}

func createInquiries(t *testing.T, svc InquiryService, propertyID string, n int) []*entity.Inquiry {
	t.Helper()
	inquiries := make([]*entity.Inquiry, 0, n)
	for i := 0; i < n; i++ {
		inq, err := svc.Create(context.Background(), CreateInquiryParams{
			PropertyID:   propertyID,
			CustomerName: "Customer",
		})
		require.NoError(t, err)
		inquiries = append(inquiries, inq)
	}
	return inquiries
}

func TestCreateAssignsSequentialPriorities(t *testing.T) {
	svc := NewInquiryService(newTestStore(), nil, logger.NoOp{})

	inquiries := createInquiries(t, svc, "prop_1", 5)
	for i, inq := range inquiries {
		assert.Equal(t, i+1, inq.Priority)
		assert.Equal(t, entity.InquiryPending, inq.Status)
	}
}

func TestPrioritiesAreScopedPerProperty(t *testing.T) {
	svc := NewInquiryService(newTestStore(), nil, logger.NoOp{})

	first := createInquiries(t, svc, "prop_1", 3)
	other := createInquiries(t, svc, "prop_2", 2)

	assert.Equal(t, 3, first[2].Priority)
	assert.Equal(t, 1, other[0].Priority)
	assert.Equal(t, 2, other[1].Priority)
}

func TestCancellationResequencesHigherRanks(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	svc := NewInquiryService(st, nil, logger.NoOp{})

	inquiries := createInquiries(t, svc, "prop_1", 4)

	cancelled := entity.InquiryCancelled
	_, err := svc.Update(ctx, inquiries[1].ID, UpdateInquiryParams{Status: &cancelled})
	require.NoError(t, err)

	// Every active inquiry ranked above the cancelled one drops by exactly 1.
	byID := make(map[string]entity.Inquiry)
	for _, inq := range st.Inquiries(ctx) {
		byID[inq.ID] = inq
	}
	assert.Equal(t, 1, byID[inquiries[0].ID].Priority)
	assert.Equal(t, 2, byID[inquiries[2].ID].Priority)
	assert.Equal(t, 3, byID[inquiries[3].ID].Priority)
	assert.Equal(t, entity.InquiryCancelled, byID[inquiries[1].ID].Status)
}

func TestCancelledInquiryDoesNotCountTowardNewPriorities(t *testing.T) {
	ctx := context.Background()
	svc := NewInquiryService(newTestStore(), nil, logger.NoOp{})

	inquiries := createInquiries(t, svc, "prop_1", 2)

	cancelled := entity.InquiryCancelled
	_, err := svc.Update(ctx, inquiries[0].ID, UpdateInquiryParams{Status: &cancelled})
	require.NoError(t, err)

	next, err := svc.Create(ctx, CreateInquiryParams{PropertyID: "prop_1", CustomerName: "Late Customer"})
	require.NoError(t, err)
	assert.Equal(t, 2, next.Priority)
}

func TestCompletionAlsoTriggersRecompute(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	svc := NewInquiryService(st, nil, logger.NoOp{})

	inquiries := createInquiries(t, svc, "prop_1", 3)

	completed := entity.InquiryCompleted
	_, err := svc.Update(ctx, inquiries[0].ID, UpdateInquiryParams{Status: &completed})
	require.NoError(t, err)

	byID := make(map[string]entity.Inquiry)
	for _, inq := range st.Inquiries(ctx) {
		byID[inq.ID] = inq
	}
	assert.Equal(t, 1, byID[inquiries[1].ID].Priority)
	assert.Equal(t, 2, byID[inquiries[2].ID].Priority)
}

func TestStatusChangeAmongActiveStatesKeepsRanks(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	svc := NewInquiryService(st, nil, logger.NoOp{})

	inquiries := createInquiries(t, svc, "prop_1", 3)

	scheduled := entity.InquiryScheduled
	_, err := svc.Update(ctx, inquiries[0].ID, UpdateInquiryParams{Status: &scheduled})
	require.NoError(t, err)

	byID := make(map[string]entity.Inquiry)
	for _, inq := range st.Inquiries(ctx) {
		byID[inq.ID] = inq
	}
	assert.Equal(t, 1, byID[inquiries[0].ID].Priority)
	assert.Equal(t, 2, byID[inquiries[1].ID].Priority)
	assert.Equal(t, 3, byID[inquiries[2].ID].Priority)
}

func TestDeleteRecomputesPriorities(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	svc := NewInquiryService(st, nil, logger.NoOp{})

	inquiries := createInquiries(t, svc, "prop_1", 3)

	require.NoError(t, svc.Delete(ctx, inquiries[0].ID))

	remaining := st.Inquiries(ctx)
	require.Len(t, remaining, 2)
	assert.Equal(t, 1, remaining[0].Priority)
	assert.Equal(t, 2, remaining[1].Priority)
}

func TestDeleteMissingInquiryIsNoOp(t *testing.T) {
	svc := NewInquiryService(newTestStore(), nil, logger.NoOp{})
	assert.NoError(t, svc.Delete(context.Background(), "inq_missing"))
}

func TestAssignSetsAgentAndNotifies(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	agent, err := st.AddUser(ctx, entity.User{Email: "agent1@company.com", Role: entity.RoleAgent, Name: "Carlos Reyes"})
	require.NoError(t, err)

	mailer := new(MockSender)
	mailer.On("Send", mock.Anything, []string{"agent1@company.com"}, mock.Anything, mock.Anything).Return(nil)

	svc := NewInquiryService(st, mailer, logger.NoOp{})
	inq, err := svc.Create(ctx, CreateInquiryParams{PropertyID: "prop_1", CustomerName: "Juan Cruz"})
	require.NoError(t, err)

	assigned, err := svc.Assign(ctx, inq.ID, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InquiryAssigned, assigned.Status)
	assert.Equal(t, agent.ID, assigned.AssignedTo)
	mailer.AssertExpectations(t)
}

func TestAssignRejectsNonAgents(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	admin, err := st.AddUser(ctx, entity.User{Email: "admin@company.com", Role: entity.RoleAdmin})
	require.NoError(t, err)

	svc := NewInquiryService(st, nil, logger.NoOp{})
	inq, err := svc.Create(ctx, CreateInquiryParams{PropertyID: "prop_1", CustomerName: "Juan Cruz"})
	require.NoError(t, err)

	_, err = svc.Assign(ctx, inq.ID, admin.ID)
	assert.Error(t, err)
	_, err = svc.Assign(ctx, inq.ID, "")
	assert.Error(t, err)
}

func TestConcurrentContextsLoseIntermediateWrites(t *testing.T) {
	// Two contexts sharing a backend perform unsynchronized read-modify-write
	// over the whole collection. A write landing between another context's
	// read and write-back is silently lost. This documents the accepted
	// last-writer-wins policy; it is not a regression to "fix" here.
	ctx := context.Background()
	backend := memory.NewBackend()
	storeA := store.New(backend)
	storeB := store.New(backend)
	svcB := NewInquiryService(storeB, nil, logger.NoOp{})

	_, err := NewInquiryService(storeA, nil, logger.NoOp{}).Create(ctx, CreateInquiryParams{PropertyID: "prop_1", CustomerName: "First"})
	require.NoError(t, err)

	// Context A reads the collection...
	snapshotA := storeA.Inquiries(ctx)

	// ...context B adds an inquiry in between...
	added, err := svcB.Create(ctx, CreateInquiryParams{PropertyID: "prop_1", CustomerName: "Second"})
	require.NoError(t, err)

	// ...and context A writes its stale snapshot back.
	require.NoError(t, storeA.PutInquiries(ctx, snapshotA))

	_, err = storeB.FindInquiry(ctx, added.ID)
	assert.Error(t, err, "the intervening write is lost under last-writer-wins")
}
