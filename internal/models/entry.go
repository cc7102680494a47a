package models

import "time"

// Entry is one sealed credential as stored. Data and IV are lowercase hex.
type Entry struct {
	ID        string     `json:"id"`
	Data      string     `json:"data"`
	IV        string     `json:"iv"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
