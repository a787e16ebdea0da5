package service

import (
	"context"
	"fmt"

	"github.com/HansLagmay/realestate-coordination-service/internal/domain/entity"
	"github.com/HansLagmay/realestate-coordination-service/internal/platform/logger"
	"github.com/HansLagmay/realestate-coordination-service/internal/store"
)

type CreatePropertyParams struct {
	Title       string
	Type        string
	Price       float64
	Bedrooms    int
	Bathrooms   int
	Area        float64
	Address     string
	City        string
	State       string
	ZipCode     string
	Description string
	Features    []string
}

type UpdatePropertyParams struct {
	Title       *string
	Type        *string
	Status      *entity.PropertyStatus
	Price       *float64
	Bedrooms    *int
	Bathrooms   *int
	Area        *float64
	Address     *string
	City        *string
	State       *string
	ZipCode     *string
	Description *string
	Features    *[]string
}

type PropertyService interface {
	Create(ctx context.Context, params CreatePropertyParams) (*entity.Property, error)
	Update(ctx context.Context, id string, params UpdatePropertyParams) (*entity.Property, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*entity.Property, error)
	List(ctx context.Context) []entity.Property
	Available(ctx context.Context) []entity.Property
}

type propertyService struct {
	store *store.Store
	log   logger.Logger
}

func NewPropertyService(st *store.Store, log logger.Logger) PropertyService {
	return &propertyService{store: st, log: log}
}

func (s *propertyService) Create(ctx context.Context, params CreatePropertyParams) (*entity.Property, error) {
	property, err := entity.NewProperty(params.Title, params.Type, params.Price)
	if err != nil {
		return nil, err
	}
	property.Bedrooms = params.Bedrooms
	property.Bathrooms = params.Bathrooms
	property.Area = params.Area
	property.Address = params.Address
	property.City = params.City
	property.State = params.State
	property.ZipCode = params.ZipCode
	property.Description = params.Description
	property.Features = params.Features

	created, err := s.store.AddProperty(ctx, *property)
	if err != nil {
		return nil, fmt.Errorf("failed to save property: %w", err)
	}

	s.log.Infof("Property %s created: %s", created.ID, created.Title)
	return created, nil
}

func (s *propertyService) Update(ctx context.Context, id string, params UpdatePropertyParams) (*entity.Property, error) {
	updated, err := s.store.UpdateProperty(ctx, id, func(p *entity.Property) {
		if params.Title != nil {
			p.Title = *params.Title
		}
		if params.Type != nil {
			p.Type = *params.Type
		}
		if params.Status != nil {
			p.Status = *params.Status
		}
		if params.Price != nil {
			p.Price = *params.Price
		}
		if params.Bedrooms != nil {
			p.Bedrooms = *params.Bedrooms
		}
		if params.Bathrooms != nil {
			p.Bathrooms = *params.Bathrooms
		}
		if params.Area != nil {
			p.Area = *params.Area
		}
		if params.Address != nil {
			p.Address = *params.Address
		}
		if params.City != nil {
			p.City = *params.City
		}
		if params.State != nil {
			p.State = *params.State
		}
		if params.ZipCode != nil {
			p.ZipCode = *params.ZipCode
		}
		if params.Description != nil {
			p.Description = *params.Description
		}
		if params.Features != nil {
			p.Features = *params.Features
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update property %s: %w", id, err)
	}
	return updated, nil
}

// Delete removes the property and its photos. Inquiries and appointments
// referencing it are left in place; readers resolve dangling references as
// "unknown" rather than failing.
func (s *propertyService) Delete(ctx context.Context, id string) error {
	for _, photo := range s.store.PhotosByProperty(ctx, id) {
		if _, err := s.store.RemovePhoto(ctx, photo.ID); err != nil {
			s.log.Warnf("Failed to delete photo %s of property %s: %v", photo.ID, id, err)
		}
	}
	if _, err := s.store.RemoveProperty(ctx, id); err != nil {
		return fmt.Errorf("failed to delete property %s: %w", id, err)
	}
	s.log.Infof("Property %s deleted", id)
	return nil
}

func (s *propertyService) Get(ctx context.Context, id string) (*entity.Property, error) {
	return s.store.FindProperty(ctx, id)
}

func (s *propertyService) List(ctx context.Context) []entity.Property {
	return s.store.Properties(ctx)
}

func (s *propertyService) Available(ctx context.Context) []entity.Property {
	var available []entity.Property
	for _, p := range s.store.Properties(ctx) {
		if p.Status == entity.PropertyAvailable {
			available = append(available, p)
		}
	}
	return available
}
