package entity

import "time"

// DefaultCommissionRate is applied when a sale is recorded without an
// explicit commission.
const DefaultCommissionRate = 0.03

// Sale closes a property. Recording one forces the referenced property to
// "sold" as a side effect of creation.
type Sale struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	AgentID    string    `json:"agentId"`
	BuyerName  string    `json:"buyerName"`
	BuyerEmail string    `json:"buyerEmail,omitempty"`
	BuyerPhone string    `json:"buyerPhone,omitempty"`
	Price      float64   `json:"price"`
	Commission float64   `json:"commission"`
	Date       string    `json:"date"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
