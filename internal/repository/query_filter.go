package repository

// QueryFilter selects and pages admin query listings.
// Search matches message, requester name and requester email
// case-insensitively (substring).
type QueryFilter struct {
	Status   string
	Category string
	Search   string
	Page     int    // 1-based; values < 1 are treated as 1
	Limit    int    // page size; clamped by the store
	Sort     string // created_at|status
	Order    string // asc|desc
}
