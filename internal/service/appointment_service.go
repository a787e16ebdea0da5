package service

import (
	"context"
	"fmt"

	"github.com/HansLagmay/realestate-coordination-service/internal/domain/entity"
	"github.com/HansLagmay/realestate-coordination-service/internal/platform/logger"
	"github.com/HansLagmay/realestate-coordination-service/internal/store"
)

const conflictMessage = "Time conflict: This property already has an appointment at this date and time."

type CreateAppointmentParams struct {
	PropertyID    string
	AgentID       string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Date          string
	Time          string
	InquiryID     string
	Notes         string
}

// UpdateAppointmentParams carries a partial update; nil fields are
// untouched. Changing PropertyID, Date, or Time re-runs the conflict check
// against the merged triple.
type UpdateAppointmentParams struct {
	PropertyID *string
	AgentID    *string
	Date       *string
	Time       *string
	Status     *entity.AppointmentStatus
	Notes      *string
}

// AppointmentService guards the slot uniqueness invariant: no two
// non-cancelled appointments may share (property, date, time).
type AppointmentService interface {
	Create(ctx context.Context, params CreateAppointmentParams) (*entity.Appointment, error)
	Update(ctx context.Context, id string, params UpdateAppointmentParams) (*entity.Appointment, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*entity.Appointment, error)
	List(ctx context.Context) []entity.Appointment
	ByAgent(ctx context.Context, agentID string) []entity.Appointment
	ByProperty(ctx context.Context, propertyID string) []entity.Appointment
	CheckConflict(ctx context.Context, propertyID, date, timeSlot, excludeID string) bool
}

type appointmentService struct {
	store *store.Store
	log   logger.Logger
}

func NewAppointmentService(st *store.Store, log logger.Logger) AppointmentService {
	return &appointmentService{store: st, log: log}
}

// CheckConflict reports whether any appointment other than excludeID blocks
// the triple. Pass an empty excludeID on create.
func (s *appointmentService) CheckConflict(ctx context.Context, propertyID, date, timeSlot, excludeID string) bool {
	for _, apt := range s.store.Appointments(ctx) {
		if apt.ID != excludeID && apt.OccupiesSlot(propertyID, date, timeSlot) {
			return true
		}
	}
	return false
}

func (s *appointmentService) Create(ctx context.Context, params CreateAppointmentParams) (*entity.Appointment, error) {
	if params.PropertyID == "" {
		return nil, fmt.Errorf("appointment must reference a property")
	}
	if params.Date == "" || params.Time == "" {
		return nil, fmt.Errorf("appointment date and time must be set")
	}

	if s.CheckConflict(ctx, params.PropertyID, params.Date, params.Time, "") {
		return nil, &ConflictError{Message: conflictMessage}
	}

	appointment := entity.Appointment{
		PropertyID:    params.PropertyID,
		AgentID:       params.AgentID,
		CustomerName:  params.CustomerName,
		CustomerEmail: params.CustomerEmail,
		CustomerPhone: params.CustomerPhone,
		Date:          params.Date,
		Time:          params.Time,
		Status:        entity.AppointmentScheduled,
		InquiryID:     params.InquiryID,
		Notes:         params.Notes,
	}

	created, err := s.store.AddAppointment(ctx, appointment)
	if err != nil {
		return nil, fmt.Errorf("failed to save appointment: %w", err)
	}

	s.log.Infof("Appointment %s scheduled for property %s on %s %s", created.ID, created.PropertyID, created.Date, created.Time)
	return created, nil
}

func (s *appointmentService) Update(ctx context.Context, id string, params UpdateAppointmentParams) (*entity.Appointment, error) {
	existing, err := s.store.FindAppointment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("appointment %s not found: %w", id, err)
	}

	if params.PropertyID != nil || params.Date != nil || params.Time != nil {
		propertyID := existing.PropertyID
		date := existing.Date
		timeSlot := existing.Time
		if params.PropertyID != nil {
			propertyID = *params.PropertyID
		}
		if params.Date != nil {
			date = *params.Date
		}
		if params.Time != nil {
			timeSlot = *params.Time
		}
		if s.CheckConflict(ctx, propertyID, date, timeSlot, id) {
			return nil, &ConflictError{Message: conflictMessage}
		}
	}

	updated, err := s.store.UpdateAppointment(ctx, id, func(apt *entity.Appointment) {
		if params.PropertyID != nil {
			apt.PropertyID = *params.PropertyID
		}
		if params.AgentID != nil {
			apt.AgentID = *params.AgentID
		}
		if params.Date != nil {
			apt.Date = *params.Date
		}
		if params.Time != nil {
			apt.Time = *params.Time
		}
		if params.Status != nil {
			apt.Status = *params.Status
		}
		if params.Notes != nil {
			apt.Notes = *params.Notes
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment %s: %w", id, err)
	}
	return updated, nil
}

func (s *appointmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.store.RemoveAppointment(ctx, id); err != nil {
		return fmt.Errorf("failed to delete appointment %s: %w", id, err)
	}
	return nil
}

func (s *appointmentService) Get(ctx context.Context, id string) (*entity.Appointment, error) {
	return s.store.FindAppointment(ctx, id)
}

func (s *appointmentService) List(ctx context.Context) []entity.Appointment {
	return s.store.Appointments(ctx)
}

func (s *appointmentService) ByAgent(ctx context.Context, agentID string) []entity.Appointment {
	var matched []entity.Appointment
	for _, apt := range s.store.Appointments(ctx) {
		if apt.AgentID == agentID {
			matched = append(matched, apt)
		}
	}
	return matched
}

func (s *appointmentService) ByProperty(ctx context.Context, propertyID string) []entity.Appointment {
	var matched []entity.Appointment
	for _, apt := range s.store.Appointments(ctx) {
		if apt.PropertyID == propertyID {
			matched = append(matched, apt)
		}
	}
	return matched
}
