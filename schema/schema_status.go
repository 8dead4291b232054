package schema

import "time"

// SessionStatus represents the status of the durable session store.
type SessionStatus struct {
	Backend       string    `json:"backend"`
	Connected     bool      `json:"connected"`
	Authenticated bool      `json:"authenticated"`
	Login         string    `json:"login,omitempty"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
}
