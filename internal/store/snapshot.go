package store

import (
	"context"

	"github.com/HansLagmay/realestate-coordination-service/internal/domain/entity"
)

// Snapshot is a full export of every collection.
type Snapshot struct {
	Properties   []entity.Property    `json:"properties"`
	Users        []entity.User        `json:"users"`
	Inquiries    []entity.Inquiry     `json:"inquiries"`
	Appointments []entity.Appointment `json:"appointments"`
	Sales        []entity.Sale        `json:"sales"`
	Photos       []entity.Photo       `json:"photos"`
}

func (s *Store) Export(ctx context.Context) Snapshot {
	return Snapshot{
		Properties:   s.Properties(ctx),
		Users:        s.Users(ctx),
		Inquiries:    s.Inquiries(ctx),
		Appointments: s.Appointments(ctx),
		Sales:        s.Sales(ctx),
		Photos:       s.Photos(ctx),
	}
}

// Import replaces only the collections present in the snapshot; nil slices
// leave the stored collection untouched.
func (s *Store) Import(ctx context.Context, snapshot Snapshot) error {
	if snapshot.Properties != nil {
		if err := s.PutProperties(ctx, snapshot.Properties); err != nil {
			return err
		}
	}
	if snapshot.Users != nil {
		if err := s.PutUsers(ctx, snapshot.Users); err != nil {
			return err
		}
	}
	if snapshot.Inquiries != nil {
		if err := s.PutInquiries(ctx, snapshot.Inquiries); err != nil {
			return err
		}
	}
	if snapshot.Appointments != nil {
		if err := s.PutAppointments(ctx, snapshot.Appointments); err != nil {
			return err
		}
	}
	if snapshot.Sales != nil {
		if err := s.PutSales(ctx, snapshot.Sales); err != nil {
			return err
		}
	}
	if snapshot.Photos != nil {
		if err := s.PutPhotos(ctx, snapshot.Photos); err != nil {
			return err
		}
	}
	return nil
}
