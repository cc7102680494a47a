// Package models defines server-side records that never leave the server.
package models

import "time"

// RefreshToken is an opaque, single-use token bound to one account.
type RefreshToken struct {
	AccountID string
	Token     string
	Expires   time.Time
}
