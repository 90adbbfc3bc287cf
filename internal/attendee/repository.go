package attendee

import "context"

// RosterRepository supplies the candidate names offered when a user
// configures attendees. Handlers depend ONLY on this interface.
type RosterRepository interface {
	Candidates(ctx context.Context) ([]string, error)
}
