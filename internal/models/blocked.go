package models

import "time"

// BlockedEmail bars an address from submitting queries. Blocks are toggled
// rather than deleted, so a lifted block keeps its row with active=false.
type BlockedEmail struct {
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}
