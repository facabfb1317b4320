package models

import "time"

// Status is the triage state of a submitted query.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusResolved   Status = "resolved"
)

// ParseStatus validates a raw status value. Any transition target that is not
// one of the three known statuses is rejected by the caller.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusResolved:
		return Status(s), true
	}
	return "", false
}

// Query is a submitted request awaiting or having received an admin response.
// Identity fields (requester, category, message) are immutable after creation;
// only Status, AdminResponse and ResolvedAt change afterwards.
type Query struct {
	ID             string     `json:"id"`
	RequesterName  string     `json:"requesterName"`
	RequesterEmail string     `json:"requesterEmail"`
	RequesterID    string     `json:"requesterId,omitempty"` // empty for guests
	Category       string     `json:"category,omitempty"`
	Message        string     `json:"message"`
	Status         Status     `json:"status"`
	AdminResponse  string     `json:"adminResponse,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	ResolvedAt     *time.Time `json:"resolvedAt,omitempty"` // non-nil iff Status == resolved
}
