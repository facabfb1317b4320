package notify

import (
	"context"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/models"
	"github.com/rs/zerolog"
)

// Notifier receives the "query updated with a new admin response" event.
// An outbound-email collaborator plugs in here; delivery mechanics are its
// concern, not the core's.
type Notifier interface {
	QueryResponded(ctx context.Context, q *models.Query)
}

// LogNotifier records responded events in the structured log. Guests are the
// interesting case (they have no dashboard to check), so the requester email
// is included for the mail collaborator to pick up.
type LogNotifier struct{ log zerolog.Logger }

func NewLogNotifier(l zerolog.Logger) *LogNotifier { return &LogNotifier{log: l} }

func (n *LogNotifier) QueryResponded(ctx context.Context, q *models.Query) {
	n.log.Info().
		Str("query_id", q.ID).
		Str("email", q.RequesterEmail).
		Bool("guest", q.RequesterID == "").
		Msg("admin response recorded")
}
