// Package model contains domain-level types for the gateway integration core.
// It is pure and free of transport/adapter concerns.
package model

import "time"

// Session is the gateway connection state obtained from the login handshake.
// ConnectionID is the opaque token the gateway expects on every subsequent
// call; it stays valid until the gateway drops it (response code 402).
type Session struct {
	ConnectionID string    `json:"connection_id"`
	ObtainedAt   time.Time `json:"obtained_at"`
	UserName     string    `json:"user_name"`
	UserClass    string    `json:"user_class"`
}

// IsZero reports whether the session has never been populated.
func (s Session) IsZero() bool { return s.ConnectionID == "" }
