package models

import "time"

// FAQ is an aggregated, deduplicated question with a running submission
// frequency. Question is the matching key: at most one entry exists per
// trimmed question text.
type FAQ struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer,omitempty"` // curated by admins, empty until written
	Category  string    `json:"category,omitempty"`
	Frequency int       `json:"frequency"`
	Active    bool      `json:"active"`
	// SourceQueryID links back to the query an admin promoted this entry
	// from; empty for aggregated or hand-written entries.
	SourceQueryID string    `json:"sourceQueryId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
