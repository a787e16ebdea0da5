package entity

import "time"

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is a property viewing slot. Date is a calendar date
// ("2024-03-15") and Time a time-of-day slot ("10:00"); the pair is compared
// as opaque strings, matching the persisted layout. No two non-cancelled
// appointments may share the same (property, date, time) triple.
type Appointment struct {
	ID            string            `json:"id"`
	PropertyID    string            `json:"propertyId"`
	AgentID       string            `json:"agentId"`
	CustomerName  string            `json:"customerName"`
	CustomerEmail string            `json:"customerEmail,omitempty"`
	CustomerPhone string            `json:"customerPhone,omitempty"`
	Date          string            `json:"date"`
	Time          string            `json:"time"`
	Status        AppointmentStatus `json:"status"`
	InquiryID     string            `json:"inquiryId,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt,omitempty"`
}

// OccupiesSlot reports whether this appointment blocks the given triple.
// Cancelled appointments release their slot.
func (a Appointment) OccupiesSlot(propertyID, date, timeSlot string) bool {
	return a.Status != AppointmentCancelled &&
		a.PropertyID == propertyID &&
		a.Date == date &&
		a.Time == timeSlot
}
