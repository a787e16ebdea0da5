package entity

import "time"

// Session is the current-user record persisted under the session key. It
// never carries the password; Token is a signed session token issued at
// login.
type Session struct {
	User
	Token   string    `json:"token,omitempty"`
	LoginAt time.Time `json:"loginAt"`
}
