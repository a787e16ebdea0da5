package entity

import "time"

type InquiryStatus string

const (
	InquiryPending   InquiryStatus = "pending"
	InquiryAssigned  InquiryStatus = "assigned"
	InquiryScheduled InquiryStatus = "scheduled"
	InquiryCompleted InquiryStatus = "completed"
	InquiryCancelled InquiryStatus = "cancelled"
)

// Active reports whether an inquiry in this status still counts toward the
// per-property priority ranking.
func (s InquiryStatus) Active() bool {
	return s != InquiryCancelled && s != InquiryCompleted
}

// Inquiry is a customer's interest in a property. Priority is a dense
// 1-based rank among the property's active inquiries, ordered by creation
// time; it is maintained by the inquiry service, never set by callers.
type Inquiry struct {
	ID            string        `json:"id"`
	PropertyID    string        `json:"propertyId"`
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail"`
	CustomerPhone string        `json:"customerPhone,omitempty"`
	Message       string        `json:"message,omitempty"`
	Status        InquiryStatus `json:"status"`
	AssignedTo    string        `json:"assignedTo,omitempty"`
	Priority      int           `json:"priority"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt,omitempty"`
}
