package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/HansLagmay/realestate-coordination-service/internal/adapter/email"
	"github.com/HansLagmay/realestate-coordination-service/internal/domain/entity"
	"github.com/HansLagmay/realestate-coordination-service/internal/platform/logger"
	"github.com/HansLagmay/realestate-coordination-service/internal/storage"
	"github.com/HansLagmay/realestate-coordination-service/internal/store"
)

type CreateInquiryParams struct {
	PropertyID    string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Message       string
}

// UpdateInquiryParams carries a partial update; nil fields are untouched.
type UpdateInquiryParams struct {
	Status     *entity.InquiryStatus
	AssignedTo *string
	Message    *string
}

// InquiryService maintains the per-property priority invariant: active
// inquiries (not cancelled, not completed) hold a dense 1-based rank in
// creation order.
type InquiryService interface {
	Create(ctx context.Context, params CreateInquiryParams) (*entity.Inquiry, error)
	Update(ctx context.Context, id string, params UpdateInquiryParams) (*entity.Inquiry, error)
	Assign(ctx context.Context, id, agentID string) (*entity.Inquiry, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*entity.Inquiry, error)
	List(ctx context.Context) []entity.Inquiry
	ByProperty(ctx context.Context, propertyID string) []entity.Inquiry
	ByAgent(ctx context.Context, agentID string) []entity.Inquiry
}

type inquiryService struct {
	store  *store.Store
	mailer email.Sender
	log    logger.Logger
}

// NewInquiryService builds the service. mailer may be nil; assignment
// notifications are then skipped.
func NewInquiryService(st *store.Store, mailer email.Sender, log logger.Logger) InquiryService {
	return &inquiryService{store: st, mailer: mailer, log: log}
}

func (s *inquiryService) Create(ctx context.Context, params CreateInquiryParams) (*entity.Inquiry, error) {
	if params.PropertyID == "" {
		return nil, fmt.Errorf("inquiry must reference a property")
	}
	if params.CustomerName == "" {
		return nil, fmt.Errorf("inquiry customer name cannot be empty")
	}

	inquiry := entity.Inquiry{
		PropertyID:    params.PropertyID,
		CustomerName:  params.CustomerName,
		CustomerEmail: params.CustomerEmail,
		CustomerPhone: params.CustomerPhone,
		Message:       params.Message,
		Status:        entity.InquiryPending,
		Priority:      s.nextPriority(ctx, params.PropertyID),
	}

	created, err := s.store.AddInquiry(ctx, inquiry)
	if err != nil {
		return nil, fmt.Errorf("failed to save inquiry: %w", err)
	}

	s.log.Infof("Inquiry %s created for property %s with priority %d", created.ID, created.PropertyID, created.Priority)
	return created, nil
}

func (s *inquiryService) Update(ctx context.Context, id string, params UpdateInquiryParams) (*entity.Inquiry, error) {
	existing, err := s.store.FindInquiry(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("inquiry %s not found: %w", id, err)
	}
	oldStatus := existing.Status

	updated, err := s.store.UpdateInquiry(ctx, id, func(inq *entity.Inquiry) {
		if params.Status != nil {
			inq.Status = *params.Status
		}
		if params.AssignedTo != nil {
			inq.AssignedTo = *params.AssignedTo
		}
		if params.Message != nil {
			inq.Message = *params.Message
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update inquiry %s: %w", id, err)
	}

	// Ranks only shift when an inquiry leaves the active set.
	if updated.Status != oldStatus && oldStatus.Active() && !updated.Status.Active() {
		if err := s.recomputeForProperty(ctx, updated.PropertyID); err != nil {
			return nil, err
		}
		if refreshed, findErr := s.store.FindInquiry(ctx, id); findErr == nil {
			updated = refreshed
		}
	}

	return updated, nil
}

func (s *inquiryService) Assign(ctx context.Context, id, agentID string) (*entity.Inquiry, error) {
	if agentID == "" {
		return nil, fmt.Errorf("an agent must be selected for assignment")
	}
	agent, err := s.store.FindUser(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("agent %s not found: %w", agentID, err)
	}
	if !agent.IsAgent() {
		return nil, fmt.Errorf("user %s is not an agent", agentID)
	}

	assigned := entity.InquiryAssigned
	updated, err := s.Update(ctx, id, UpdateInquiryParams{
		Status:     &assigned,
		AssignedTo: &agentID,
	})
	if err != nil {
		return nil, err
	}

	s.notifyAgent(ctx, agent, updated)
	s.log.Infof("Inquiry %s assigned to agent %s", id, agentID)
	return updated, nil
}

func (s *inquiryService) Delete(ctx context.Context, id string) error {
	existing, err := s.store.FindInquiry(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}

	removed, err := s.store.RemoveInquiry(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete inquiry %s: %w", id, err)
	}
	if removed {
		return s.recomputeForProperty(ctx, existing.PropertyID)
	}
	return nil
}

func (s *inquiryService) Get(ctx context.Context, id string) (*entity.Inquiry, error) {
	return s.store.FindInquiry(ctx, id)
}

func (s *inquiryService) List(ctx context.Context) []entity.Inquiry {
	return s.store.Inquiries(ctx)
}

func (s *inquiryService) ByProperty(ctx context.Context, propertyID string) []entity.Inquiry {
	var matched []entity.Inquiry
	for _, inq := range s.store.Inquiries(ctx) {
		if inq.PropertyID == propertyID {
			matched = append(matched, inq)
		}
	}
	return matched
}

func (s *inquiryService) ByAgent(ctx context.Context, agentID string) []entity.Inquiry {
	var matched []entity.Inquiry
	for _, inq := range s.store.Inquiries(ctx) {
		if inq.AssignedTo == agentID {
			matched = append(matched, inq)
		}
	}
	return matched
}

// nextPriority is the rank a brand-new inquiry takes: one past the current
// active count for its property.
func (s *inquiryService) nextPriority(ctx context.Context, propertyID string) int {
	active := 0
	for _, inq := range s.store.Inquiries(ctx) {
		if inq.PropertyID == propertyID && inq.Status.Active() {
			active++
		}
	}
	return active + 1
}

// recomputeForProperty resequences the property's active inquiries to a
// dense 1..n ranking by creation time and writes the whole collection back.
// This is a non-atomic read-modify-write: a concurrent write from another
// context can be lost (last writer wins).
func (s *inquiryService) recomputeForProperty(ctx context.Context, propertyID string) error {
	inquiries := s.store.Inquiries(ctx)

	active := make([]*entity.Inquiry, 0, len(inquiries))
	for i := range inquiries {
		if inquiries[i].PropertyID == propertyID && inquiries[i].Status.Active() {
			active = append(active, &inquiries[i])
		}
	}
	// Stable sort keeps insertion order for same-instant timestamps.
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].CreatedAt.Before(active[j].CreatedAt)
	})
	for rank, inq := range active {
		inq.Priority = rank + 1
	}

	if err := s.store.PutInquiries(ctx, inquiries); err != nil {
		return fmt.Errorf("failed to persist recomputed priorities for property %s: %w", propertyID, err)
	}
	return nil
}

func (s *inquiryService) notifyAgent(ctx context.Context, agent *entity.User, inquiry *entity.Inquiry) {
	if s.mailer == nil || agent.Email == "" {
		return
	}
	subject := "New inquiry assigned to you"
	body := fmt.Sprintf("Inquiry %s from %s has been assigned to you.\n\nProperty: %s\nMessage: %s\n",
		inquiry.ID, inquiry.CustomerName, inquiry.PropertyID, inquiry.Message)
	if err := s.mailer.Send(ctx, []string{agent.Email}, subject, body); err != nil {
		s.log.Warnf("Failed to email agent %s about inquiry %s: %v", agent.ID, inquiry.ID, err)
	}
}
