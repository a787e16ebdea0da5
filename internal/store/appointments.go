package store

import (
	"context"
	"time"

	"github.com/HansLagmay/realestate-coordination-service/internal/domain/entity"
	"github.com/HansLagmay/realestate-coordination-service/internal/storage"
)

func (s *Store) Appointments(ctx context.Context) []entity.Appointment {
	return getCollection[entity.Appointment](ctx, s, CollectionAppointments)
}

func (s *Store) PutAppointments(ctx context.Context, appointments []entity.Appointment) error {
	return putCollection(ctx, s, CollectionAppointments, appointments)
}

func (s *Store) FindAppointment(ctx context.Context, id string) (*entity.Appointment, error) {
	for _, apt := range s.Appointments(ctx) {
		if apt.ID == id {
			return &apt, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) AddAppointment(ctx context.Context, appointment entity.Appointment) (*entity.Appointment, error) {
	appointment.ID = generateID("apt")
	appointment.CreatedAt = time.Now().UTC()

	appointments := append(s.Appointments(ctx), appointment)
	if err := s.PutAppointments(ctx, appointments); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (s *Store) UpdateAppointment(ctx context.Context, id string, apply func(*entity.Appointment)) (*entity.Appointment, error) {
	appointments := s.Appointments(ctx)
	for i := range appointments {
		if appointments[i].ID != id {
			continue
		}
		apply(&appointments[i])
		appointments[i].UpdatedAt = time.Now().UTC()
		if err := s.PutAppointments(ctx, appointments); err != nil {
			return nil, err
		}
		updated := appointments[i]
		return &updated, nil
	}
	return nil, storage.ErrNotFound
}

func (s *Store) RemoveAppointment(ctx context.Context, id string) (bool, error) {
	appointments := s.Appointments(ctx)
	kept := appointments[:0:0]
	for _, apt := range appointments {
		if apt.ID != id {
			kept = append(kept, apt)
		}
	}
	if len(kept) == len(appointments) {
		return false, nil
	}
	if err := s.PutAppointments(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}
