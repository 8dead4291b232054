// Package schema has models, enums and shared constants for all parts of contactbook.
package schema

import "time"

// Contact is one entry of the remote contact list. The server is authoritative
// for ID and CreatedAt; this layer never mutates a Contact in place. The ID is
// an opaque server-assigned identifier, not a number.
type Contact struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	PhoneNumber string     `json:"phoneNumber"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// Account is the login identity persisted alongside the token.
type Account struct {
	Login string `json:"login"`
}

// Credential pairs a bearer token with the login identity that owns it.
// At most one Credential is live per process.
type Credential struct {
	Token string
	Login string
}

// LoginRequest is the body of POST /auth/login and POST /auth/register.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// ContactRequest is the body of POST /contacts.
type ContactRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

// TokenResponse is the success payload of the auth endpoints. The service has
// answered with both spellings of the token field over time, so both are accepted.
type TokenResponse struct {
	Token       string   `json:"token"`
	AccessToken string   `json:"access_token"`
	User        *Account `json:"user,omitempty"`
}

// Bearer returns the usable token from a TokenResponse, preferring the
// canonical field over the legacy one. Empty means the response carried no token.
func (r *TokenResponse) Bearer() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}

// APIError is the error payload shape the service uses for 4xx responses.
type APIError struct {
	Message string `json:"message"`
}
