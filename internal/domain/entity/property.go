package entity

import (
	"errors"
	"time"
)

type PropertyStatus string

const (
	PropertyAvailable PropertyStatus = "available"
	PropertySold      PropertyStatus = "sold"
)

// Property is a listing record. Collections are serialized as JSON, so the
// field tags match the persisted camelCase layout shared by every consumer of
// the store.
type Property struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Type        string         `json:"type"`
	Status      PropertyStatus `json:"status"`
	Price       float64        `json:"price"`
	Bedrooms    int            `json:"bedrooms"`
	Bathrooms   int            `json:"bathrooms"`
	Area        float64        `json:"area"`
	Address     string         `json:"address"`
	City        string         `json:"city"`
	State       string         `json:"state"`
	ZipCode     string         `json:"zipCode"`
	Description string         `json:"description"`
	Features    []string       `json:"features"`
	SoldDate    string         `json:"soldDate,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt,omitempty"`
}

func NewProperty(title, propertyType string, price float64) (*Property, error) {
	if title == "" {
		return nil, errors.New("property title cannot be empty")
	}
	if price < 0 {
		return nil, errors.New("property price cannot be negative")
	}
	return &Property{
		Title:  title,
		Type:   propertyType,
		Status: PropertyAvailable,
		Price:  price,
	}, nil
}

// MarkSold stamps the sold status and date. The date is the sale's calendar
// date, not the moment the record was written.
func (p *Property) MarkSold(saleDate string) {
	p.Status = PropertySold
	p.SoldDate = saleDate
	p.UpdatedAt = time.Now().UTC()
}
