package entity

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
)

// User is an operator account. Passwords are stored and compared in
// plaintext: the store is a coordination demo, not an identity provider, and
// the persisted layout is shared with consumers that expect it this way.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"password,omitempty"`
	Role           Role      `json:"role"`
	Name           string    `json:"name"`
	FirstName      string    `json:"firstName,omitempty"`
	LastName       string    `json:"lastName,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Avatar         string    `json:"avatar,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt,omitempty"`
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
func (u User) IsAgent() bool { return u.Role == RoleAgent }

// WithoutPassword returns a copy safe to persist in the session record.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}
