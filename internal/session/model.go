package session

import "time"

// State is the conversation step a user's session is in.
type State string

const (
	StateIdle                        State = "IDLE"
	StateAwaitingMeetingConfirmation State = "AWAITING_MEETING_CONFIRMATION"
	StateAwaitingAttendeeNames       State = "AWAITING_ATTENDEE_NAMES"
)

// Session holds one user's pending conversation. At most one pending
// order text exists at a time; a new submission overwrites it.
type Session struct {
	ID           string
	UserID       string
	State        State
	PendingOrder string
	UpdatedAt    time.Time
}

// Reset returns the session to idle and drops the pending order.
func (s *Session) Reset() {
	s.State = StateIdle
	s.PendingOrder = ""
}
